// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"errors"
	"testing"

	"github.com/toilettalk/toilettalk/models"
)

func strPtr(s string) *string { return &s }

func TestValidateStruct_PostMessage(t *testing.T) {
	tests := []struct {
		name      string
		req       models.PostMessageRequest
		wantField string
	}{
		{"valid", models.PostMessageRequest{LocationID: "Cocktail Lounge", Description: strPtr("hi")}, ""},
		{"empty description is allowed", models.PostMessageRequest{LocationID: "Cocktail Lounge", Description: strPtr("")}, ""},
		{"missing description", models.PostMessageRequest{LocationID: "Cocktail Lounge"}, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var verr *RequestValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected RequestValidationError, got %v", err)
			}
			if len(verr.Fields) != 1 || verr.Fields[0].Field != tt.wantField {
				t.Errorf("expected failure on %s, got %+v", tt.wantField, verr.Fields)
			}
			if verr.Fields[0].Tag != "required" {
				t.Errorf("expected required tag, got %s", verr.Fields[0].Tag)
			}
		})
	}
}

func TestValidateStruct_EnterLocation(t *testing.T) {
	err := ValidateStruct(&models.EnterLocationRequest{Password: float64(3333)})
	if err == nil {
		t.Fatal("expected error for missing location")
	}
	if err.Error() != "location is required" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	if err := ValidateStruct(&models.EnterLocationRequest{Location: strPtr("Cocktail Lounge")}); err != nil {
		t.Errorf("password is checked by the handler, got %v", err)
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("expected the same validator instance")
	}
}
