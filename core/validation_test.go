package core

import (
	"errors"
	"testing"
)

func TestValidateContractRecord(t *testing.T) {
	valid := &ContractRecord{
		CompositeKey: "abc123def456_proc_num",
		Objeto:       "Aquisição de material",
		Valor:        "R$ 1.234,56",
		VersionIndex: 0,
	}

	tests := []struct {
		name    string
		record  *ContractRecord
		wantErr error
	}{
		{"valid record", valid, nil},
		{"nil record", nil, ErrInvalidRecord},
		{
			"empty object",
			&ContractRecord{CompositeKey: "k", Valor: "R$ 1,00"},
			ErrEmptyObject,
		},
		{
			"empty value",
			&ContractRecord{CompositeKey: "k", Objeto: "obj"},
			ErrEmptyValue,
		},
		{
			"negative version",
			&ContractRecord{CompositeKey: "k", Objeto: "obj", Valor: "R$ 1,00", VersionIndex: -1},
			ErrNegativeVersion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContractRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQAPair(t *testing.T) {
	tests := []struct {
		name    string
		pair    *QAPair
		wantErr error
	}{
		{
			"valid pair",
			&QAPair{ID: "base_00_v0", Question: "Qual o valor?", Answer: "R$ 1,00"},
			nil,
		},
		{"nil pair", nil, ErrInvalidQAPair},
		{
			"empty question",
			&QAPair{ID: "base_00_v0", Answer: "R$ 1,00"},
			ErrEmptyQuestion,
		},
		{
			"empty id",
			&QAPair{Question: "Qual o valor?", Answer: "R$ 1,00"},
			ErrInvalidQAPair,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQAPair(tt.pair)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
