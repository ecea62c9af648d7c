package dto_test

import (
	"testing"

	"flightapi/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq operator with table",
			filter: dto.Filter{
				Field:    "id",
				Value:    int64(42),
				Operator: dto.FilterOperatorEq,
				Table:    "flights",
			},
			wantWhere: "flights.id = :id",
			wantArgs:  map[string]any{"id": int64(42)},
		},
		{
			name: "eq operator without table",
			filter: dto.Filter{
				Field:    "status",
				Value:    "Reserved",
				Operator: dto.FilterOperatorEq,
			},
			wantWhere: "status = :status",
			wantArgs:  map[string]any{"status": "Reserved"},
		},
		{
			name: "not_eq operator",
			filter: dto.Filter{
				Field:    "status",
				Value:    "Cancelled",
				Operator: dto.FilterOperatorNotEq,
				Table:    "flights",
			},
			wantWhere: "flights.status != :status",
			wantArgs:  map[string]any{"status": "Cancelled"},
		},
		{
			name: "is_null operator",
			filter: dto.Filter{
				Field:    "eticket_pdf_path",
				Operator: dto.FilterIsNull,
				Table:    "flights",
			},
			wantWhere: "flights.eticket_pdf_path IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name: "is_not_null operator",
			filter: dto.Filter{
				Field:    "eticket_pdf_path",
				Operator: dto.FilterIsNotNull,
				Table:    "flights",
			},
			wantWhere: "flights.eticket_pdf_path IS NOT NULL",
			wantArgs:  map[string]any{},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "res_no",
				Field:    "reservation_number",
				Value:    "ABC123",
				Operator: dto.FilterOperatorEq,
			},
			wantWhere: "reservation_number = :res_no",
			wantArgs:  map[string]any{"res_no": "ABC123"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Value:    "Reserved",
				Operator: "like",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where clause %q, got %q", tt.wantWhere, where)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, want := range tt.wantArgs {
				if args[key] != want {
					t.Errorf("expected arg %q to be %v, got %v", key, want, args[key])
				}
			}
		})
	}
}

func TestFilter_GetWhereClause_InOperator(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Value:    []string{"Reserved", "Boarded"},
		Operator: dto.FilterOperatorIn,
		Table:    "flights",
	}

	where, args := filter.GetWhereClause()

	if where != "flights.status IN (:status_0, :status_1) " {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["status_0"] != "Reserved" || args["status_1"] != "Boarded" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "reservation_number",
				Value:    "ABC123",
				Operator: dto.FilterOperatorEq,
				Table:    "flights",
			},
			dto.Filter{
				Field:    "status",
				Value:    "Reserved",
				Operator: dto.FilterOperatorEq,
				Table:    "flights",
			},
		},
	}

	where, args := group.GetWhereClause()

	want := "(flights.reservation_number = :reservation_number AND flights.status = :status)"
	if where != want {
		t.Errorf("expected %q, got %q", want, where)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
