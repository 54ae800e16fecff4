// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package validation

import (
	"strings"
	"testing"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type moodRequest struct {
	Mood   string `json:"mood" validate:"required,notblank"`
	Number int    `json:"number" validate:"min=1,max=50"`
	Sort   string `json:"sort,omitempty" validate:"omitempty,oneof=score title"`
}

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{"register", &registerRequest{Username: "film.buff_1", Email: "a@example.com", Password: "hunter22hunter"}},
		{"mood minimal", &moodRequest{Mood: "happy", Number: 1}},
		{"mood with sort", &moodRequest{Mood: "nostalgic", Number: 50, Sort: "title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(tt.input); err != nil {
				t.Errorf("ValidateStruct() = %v, want nil", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "missing username",
			input:     &registerRequest{Email: "a@example.com", Password: "hunter22hunter"},
			wantField: "username",
			wantTag:   "required",
			wantMsg:   "username is required",
		},
		{
			name:      "username charset",
			input:     &registerRequest{Username: "bad name", Email: "a@example.com", Password: "hunter22hunter"},
			wantField: "username",
			wantTag:   "username",
			wantMsg:   "username may only contain",
		},
		{
			name:      "short password",
			input:     &registerRequest{Username: "cinephile", Email: "a@example.com", Password: "short"},
			wantField: "password",
			wantTag:   "min",
			wantMsg:   "password must be at least 8 characters",
		},
		{
			name:      "bad email",
			input:     &registerRequest{Username: "cinephile", Email: "nope", Password: "hunter22hunter"},
			wantField: "email",
			wantTag:   "email",
			wantMsg:   "email must be a valid email address",
		},
		{
			name:      "blank mood",
			input:     &moodRequest{Mood: "   ", Number: 5},
			wantField: "mood",
			wantTag:   "notblank",
			wantMsg:   "mood must not be blank",
		},
		{
			name:      "number too large",
			input:     &moodRequest{Mood: "sad", Number: 51},
			wantField: "number",
			wantTag:   "max",
			wantMsg:   "number must be at most 50",
		},
		{
			name:      "sort oneof",
			input:     &moodRequest{Mood: "sad", Number: 5, Sort: "random"},
			wantField: "sort",
			wantTag:   "oneof",
			wantMsg:   "sort must be one of: score title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if !strings.Contains(errs[0].Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	single := ValidateStruct(&moodRequest{Mood: "", Number: 3})
	if single == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	apiErr := single.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "mood" {
		t.Errorf("Details[field] = %v, want mood", apiErr.Details["field"])
	}

	multi := ValidateStruct(&registerRequest{})
	if multi == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	apiErr = multi.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 3 {
		t.Fatalf("Details[fields] = %v, want 3 entries", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "email is required") {
		t.Errorf("Message = %q, want all field messages", apiErr.Message)
	}

	empty := &RequestValidationError{}
	if got := empty.ToAPIError().Message; got != "Validation failed" {
		t.Errorf("empty ToAPIError().Message = %q, want Validation failed", got)
	}
	if got := empty.Error(); got != "validation failed" {
		t.Errorf("empty Error() = %q, want validation failed", got)
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	verr := ValidateStruct("not a struct")
	if verr == nil {
		t.Fatal("ValidateStruct(string) = nil, want error")
	}
	if verr.Errors()[0].Field() != "unknown" {
		t.Errorf("Field() = %q, want unknown", verr.Errors()[0].Field())
	}
}
