// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"gioui.org/toast/unit"
)

func TestMetric_DpToSp(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
		PxPerSp: 3,
	}

	{
		exp := m.Dp(5)
		got := m.Sp(m.DpToSp(5))
		if got != exp {
			t.Errorf("DpToSp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := m.Sp(5)
		got := m.Dp(m.SpToDp(5))
		if got != exp {
			t.Errorf("SpToDp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.Dp(5)
		got := m.PxToDp(m.Dp(5))
		if got != exp {
			t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
		}
	}
}

func TestMetric_ZeroValue(t *testing.T) {
	var m unit.Metric
	if got := m.Dp(15); got != 15 {
		t.Errorf("zero Metric Dp(15) = %v, want 15", got)
	}
	if got := m.Sp(14); got != 14 {
		t.Errorf("zero Metric Sp(14) = %v, want 14", got)
	}
}

func TestMetric_Ceil(t *testing.T) {
	m := unit.Metric{PxPerDp: 1.5}
	if got := m.Ceil(3); got != 5 {
		t.Errorf("Ceil(3dp) at 1.5 = %v, want 5", got)
	}
}
