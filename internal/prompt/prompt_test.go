package prompt

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"explicit yes", "y\n", false, true},
		{"explicit no", "n\n", true, false},
		{"empty takes default yes", "\n", true, true},
		{"empty takes default no", "\n", false, false},
		{"anything else is no", "maybe\n", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)
			got, err := p.Confirm("move it?", tt.defaultYes)
			if err != nil {
				t.Fatalf("Confirm: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "move it?") {
				t.Errorf("question not written: %q", out.String())
			}
		})
	}
}

func TestConfirmAborted(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	if _, err := p.Confirm("?", false); !errors.Is(err, ErrAborted) {
		t.Errorf("err = %v, want ErrAborted", err)
	}
}

func TestSelectEach(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []bool
	}{
		{"mixed answers", "y\nn\ny\n", []bool{true, false, true}},
		{"all shortcut", "n\na\n", []bool{false, true, true}},
		{"quit declines rest", "y\nq\n", []bool{true, false, false}},
		{"defaults to no", "\n\n\n", []bool{false, false, false}},
	}
	labels := []string{"one", "two", "three"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)
			got, err := p.SelectEach("pick:", labels)
			if err != nil {
				t.Fatalf("SelectEach: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SelectEach = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectEachEmpty(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	got, err := p.SelectEach("pick:", nil)
	if err != nil || got != nil {
		t.Errorf("SelectEach(empty) = %v, %v", got, err)
	}
}

func TestSelectEachMissingFinalNewline(t *testing.T) {
	p := New(strings.NewReader("a"), &bytes.Buffer{})
	got, err := p.SelectEach("pick:", []string{"one", "two"})
	if err != nil {
		t.Fatalf("SelectEach: %v", err)
	}
	if !reflect.DeepEqual(got, []bool{true, true}) {
		t.Errorf("SelectEach = %v, want all selected", got)
	}
}
