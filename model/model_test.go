package model

import (
	"encoding/json"
	"testing"
)

func TestIDAcceptsStringAndNumber(t *testing.T) {
	var got struct {
		ID ID `json:"id"`
	}

	if err := json.Unmarshal([]byte(`{"id":"al-300000079"}`), &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "al-300000079" {
		t.Errorf("string id = %q", got.ID)
	}

	if err := json.Unmarshal([]byte(`{"id":42}`), &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "42" {
		t.Errorf("numeric id = %q, want \"42\"", got.ID)
	}

	if err := json.Unmarshal([]byte(`{"id":true}`), &got); err == nil {
		t.Error("expected an error for a non string, non number id")
	}
}

func TestOKEnvelope(t *testing.T) {
	res := OK("payload")
	if res.Code != 200 || res.Data != "payload" {
		t.Errorf("OK = %+v", res)
	}
}
