package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	schema := ObjectSchema(map[string]JSONSchemaProps{
		"contactId":  StringProp("HubSpot contact ID"),
		"limit":      {Type: "integer", Description: "Max results"},
		"score":      {Type: "number"},
		"archived":   {Type: "boolean"},
		"properties": {Type: "object", Properties: map[string]JSONSchemaProps{"email": StringProp("")}},
		"ids":        {Type: "array", Items: &JSONSchemaProps{Type: "string"}},
	}, "contactId")

	tests := []struct {
		name    string
		params  map[string]any
		wantErr string
	}{
		{
			name:   "valid full set",
			params: map[string]any{"contactId": "123", "limit": float64(10), "score": 1.5, "archived": true, "properties": map[string]any{"email": "a@b.c"}, "ids": []any{"1", "2"}},
		},
		{
			name:    "missing required",
			params:  map[string]any{"limit": float64(10)},
			wantErr: `missing required parameter "contactId"`,
		},
		{
			name:    "wrong type for string",
			params:  map[string]any{"contactId": 123},
			wantErr: `parameter "contactId" must be a string`,
		},
		{
			name:    "fractional integer rejected",
			params:  map[string]any{"contactId": "1", "limit": 1.5},
			wantErr: `parameter "limit" must be a integer`,
		},
		{
			name:   "whole float accepted as integer",
			params: map[string]any{"contactId": "1", "limit": float64(25)},
		},
		{
			name:    "wrong item type in array",
			params:  map[string]any{"contactId": "1", "ids": []any{"ok", 7}},
			wantErr: `parameter "ids[1]" must be a string`,
		},
		{
			name:    "nested object wrong type",
			params:  map[string]any{"contactId": "1", "properties": map[string]any{"email": 7}},
			wantErr: `parameter "email" must be a string`,
		},
		{
			name:   "unknown parameters pass through",
			params: map[string]any{"contactId": "1", "somethingElse": struct{}{}},
		},
		{
			name:   "nil value skipped",
			params: map[string]any{"contactId": "1", "limit": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Validate(tt.params)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, IsCode(err, CodeValidation))
		})
	}
}

func TestValidateNonObjectSchemaIsNoop(t *testing.T) {
	schema := JSONSchemaProps{Type: "string"}
	assert.NoError(t, schema.Validate(map[string]any{"anything": 1}))
}
