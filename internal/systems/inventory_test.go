package systems

import (
	"hop-core/internal/domain"
	"testing"
)

func TestPickupItems(t *testing.T) {
	at := domain.Axial(4, 5)
	newSpearState := func() *domain.GameState {
		s := newTestState()
		s.Items = append(s.Items, &domain.Item{ID: "item-1", Type: domain.ItemSpear, Position: at})
		return s
	}

	tests := []struct {
		name      string
		carry     *domain.CarryComponent
		wantMsgs  int
		wantItems int
	}{
		{"picks up the spear", &domain.CarryComponent{}, 1, 0},
		{"already carrying", &domain.CarryComponent{HasSpear: true}, 0, 1},
		{"cannot carry", nil, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSpearState()
			a := addActor(s, "p", domain.FactionPlayer, at)
			a.Carry = tt.carry

			msgs := PickupItems(s, a)
			if len(msgs) != tt.wantMsgs || len(s.Items) != tt.wantItems {
				t.Errorf("msgs = %v, items left = %d", msgs, len(s.Items))
			}
			if tt.wantMsgs > 0 && !a.Carry.HasSpear {
				t.Error("spear should be carried")
			}
		})
	}
}
