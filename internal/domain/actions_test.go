package domain

import (
	"encoding/json"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{"Skill", ActionSkill},
		{"WAIT", ActionWait},
		{"admin_spawn", ActionAdminSpawn},
		{"ATTACK", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_JSON(t *testing.T) {
	act := ReplayAction{Turn: 3, Token: PlayerID, Action: ActionSkill}
	data, err := json.Marshal(act)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"turn":3,"token":"player","action":"SKILL","payload":null}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back ReplayAction
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Action != ActionSkill {
		t.Errorf("action = %v", back.Action)
	}
	if ActionType(200).String() != "UNKNOWN" {
		t.Error("unknown values print as UNKNOWN")
	}
}
