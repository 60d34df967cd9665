package pattern

import "testing"

func TestEditLimitsFinalizeZeroDefault(t *testing.T) {
	// spec.md §9(c): when Edits is never set, every individually-unset
	// kind defaults to zero.
	l := NewEditLimits().Substitutions(2)
	l.finalize()

	if !l.Allows(Counts{Substitutions: 2}) {
		t.Errorf("Allows(Substitutions:2) = false, want true")
	}
	if l.Allows(Counts{Insertions: 1}) {
		t.Errorf("Allows(Insertions:1) = true, want false (unset kinds default to 0)")
	}
}

func TestEditLimitsFinalizeIdempotent(t *testing.T) {
	l := NewEditLimits().Deletions(1)
	l.finalize()
	l.finalize()
	if !l.Allows(Counts{Deletions: 1}) {
		t.Errorf("Allows(Deletions:1) = false after double finalize, want true")
	}
}

func TestEditLimitsWithEditsSetIgnoresZeroDefault(t *testing.T) {
	l := NewEditLimits().Edits(2)
	l.finalize()

	if !l.Allows(Counts{Insertions: 1, Substitutions: 1}) {
		t.Errorf("Allows(total 2 mixed edits) = false, want true when only Edits(2) is set")
	}
	if l.Allows(Counts{Insertions: 3}) {
		t.Errorf("Allows(3 insertions) = true, want false: exceeds total budget 2")
	}
}

func TestEditLimitsAllowsNil(t *testing.T) {
	var l *EditLimits
	if !l.Allows(Counts{}) {
		t.Errorf("nil EditLimits.Allows(zero counts) = false, want true")
	}
	if l.Allows(Counts{Insertions: 1}) {
		t.Errorf("nil EditLimits.Allows(1 insertion) = true, want false")
	}
}

func TestEditLimitsCanX(t *testing.T) {
	l := NewEditLimits().Edits(1)
	l.finalize()

	if !l.CanInsert(Counts{}) {
		t.Errorf("CanInsert(zero counts) = false, want true")
	}
	if l.CanInsert(Counts{Insertions: 1}) {
		t.Errorf("CanInsert(1 already spent) = true, want false: budget is 1")
	}
	if !l.CanDelete(Counts{}) || !l.CanSubstitute(Counts{}) || !l.CanSwap(Counts{}) {
		t.Errorf("Can* from zero counts under Edits(1) should all be true")
	}
}

func TestEditLimitsExactOnly(t *testing.T) {
	tests := []struct {
		name string
		l    *EditLimits
		want bool
	}{
		{name: "nil limits", l: nil, want: true},
		{name: "edits zero", l: NewEditLimits().Edits(0), want: true},
		{name: "edits positive", l: NewEditLimits().Edits(2), want: false},
		{name: "empty after finalize", l: NewEditLimits(), want: true},
		{name: "one kind allowed", l: NewEditLimits().Insertions(1), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.l.finalize()
			if got := tt.l.ExactOnly(); got != tt.want {
				t.Errorf("ExactOnly() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEditLimitsValidate(t *testing.T) {
	tests := []struct {
		name    string
		l       *EditLimits
		wantErr bool
	}{
		{name: "nil", l: nil, wantErr: false},
		{name: "positive", l: NewEditLimits().Edits(2), wantErr: false},
		{name: "negative edits", l: NewEditLimits().Edits(-1), wantErr: true},
		{name: "negative insertions", l: NewEditLimits().Insertions(-1), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.l.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestCountsTotal(t *testing.T) {
	c := Counts{Insertions: 1, Deletions: 2, Substitutions: 3, Swaps: 4}
	if got := c.Total(); got != 10 {
		t.Errorf("Total() = %d, want 10", got)
	}
}
