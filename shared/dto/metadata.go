package dto

import (
	"flightapi/shared/constant"
	"flightapi/shared/model"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = model.CreatedAt.UTC().Format(constant.TimestampModel)
	m.UpdatedAt = model.UpdatedAt.UTC().Format(constant.TimestampModel)
}
