package dto_test

import (
	"testing"

	"daawat/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name:          "equality with table",
			filter:        dto.Eq("menu_items", "is_available", true),
			expectedWhere: "menu_items.is_available = :is_available",
			expectedArgs:  map[string]any{"is_available": true},
		},
		{
			name: "equality without table",
			filter: dto.Filter{
				Field:    "day_of_week",
				Value:    3,
				Operator: dto.FilterOperatorEq,
			},
			expectedWhere: "day_of_week = :day_of_week",
			expectedArgs:  map[string]any{"day_of_week": 3},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "cat",
				Field:    "category",
				Value:    "dessert",
				Operator: dto.FilterOperatorEq,
			},
			expectedWhere: "category = :cat",
			expectedArgs:  map[string]any{"cat": "dessert"},
		},
		{
			name: "is not null",
			filter: dto.Filter{
				Field:    "instagram_handle",
				Operator: dto.FilterIsNotNull,
			},
			expectedWhere: "instagram_handle IS NOT NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "category",
				Value:    "dessert",
				Operator: "like",
			},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where clause %q, got %q", tt.expectedWhere, where)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, value := range tt.expectedArgs {
				if args[key] != value {
					t.Errorf("expected arg %s to be %v, got %v", key, value, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.And(
		dto.Eq("chef_specials", "day_of_week", 0),
		dto.Eq("chef_specials", "is_active", true),
	)

	where, args := group.GetWhereClause()

	expected := "(chef_specials.day_of_week = :day_of_week AND chef_specials.is_active = :is_active)"
	if where != expected {
		t.Errorf("expected where clause %q, got %q", expected, where)
	}

	if args["day_of_week"] != 0 || args["is_active"] != true {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.And()

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestOrderByWithLimit(t *testing.T) {
	params := dto.OrderByWithLimit("created_at", dto.SortDirDesc, 6)

	if params.SortBy != "created_at" || params.SortDir != dto.SortDirDesc || params.Limit != 6 {
		t.Errorf("unexpected params: %+v", params)
	}
}
