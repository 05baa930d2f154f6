package value

import (
	"math"
	"testing"
)

func TestNumber_Forms(t *testing.T) {
	if got := IntNumber(-3).Form(); got != IntForm {
		t.Errorf("IntNumber form = %v, want IntForm", got)
	}
	if got := UintNumber(42).Form(); got != IntForm {
		t.Errorf("UintNumber(42) form = %v, want IntForm (normalised)", got)
	}
	if got := UintNumber(math.MaxInt64 + 1).Form(); got != UintForm {
		t.Errorf("UintNumber above int64 form = %v, want UintForm", got)
	}
	if got := FloatNumber(0.5).Form(); got != FloatForm {
		t.Errorf("FloatNumber form = %v, want FloatForm", got)
	}
}

func TestNumber_Int64(t *testing.T) {
	tests := []struct {
		name    string
		n       Number
		want    int64
		wantErr bool
	}{
		{"int passes through", IntNumber(-7), -7, false},
		{"max int64", IntNumber(math.MaxInt64), math.MaxInt64, false},
		{"uint above range fails", UintNumber(math.MaxUint64), 0, true},
		{"whole float converts", FloatNumber(3), 3, false},
		{"negative whole float", FloatNumber(-2048), -2048, false},
		{"fractional float fails", FloatNumber(3.5), 0, true},
		{"huge float fails", FloatNumber(1e300), 0, true},
		{"exactly 2^63 fails", FloatNumber(math.Ldexp(1, 63)), 0, true},
		{"exactly -2^63 converts", FloatNumber(math.Ldexp(-1, 63)), math.MinInt64, false},
		{"nan fails", FloatNumber(math.NaN()), 0, true},
		{"inf fails", FloatNumber(math.Inf(1)), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.n.Int64()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Int64() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Int64() = %d, want %d", got, tt.want)
			}
			if err != nil {
				if _, ok := err.(*TypeMismatchError); !ok {
					t.Errorf("error type = %T, want *TypeMismatchError", err)
				}
			}
		})
	}
}

func TestNumber_Uint64(t *testing.T) {
	tests := []struct {
		name    string
		n       Number
		want    uint64
		wantErr bool
	}{
		{"positive int", IntNumber(7), 7, false},
		{"negative int fails", IntNumber(-1), 0, true},
		{"max uint64", UintNumber(math.MaxUint64), math.MaxUint64, false},
		{"whole float", FloatNumber(1024), 1024, false},
		{"negative float fails", FloatNumber(-1), 0, true},
		{"fractional fails", FloatNumber(0.25), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.n.Uint64()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Uint64() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Uint64() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNumber_Float64(t *testing.T) {
	if got := IntNumber(-2).Float64(); got != -2 {
		t.Errorf("Float64() = %v, want -2", got)
	}
	if got := UintNumber(math.MaxInt64 + 1).Float64(); got != math.Ldexp(1, 63) {
		t.Errorf("Float64() = %v, want 2^63", got)
	}
	if got := FloatNumber(0.1).Float64(); got != 0.1 {
		t.Errorf("Float64() = %v, want 0.1", got)
	}
}

func TestNumber_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Number
		want bool
	}{
		{"int int equal", IntNumber(5), IntNumber(5), true},
		{"int int unequal", IntNumber(5), IntNumber(6), false},
		{"int float same value", IntNumber(5), FloatNumber(5), true},
		{"float int same value", FloatNumber(-12), IntNumber(-12), true},
		{"int float fractional", IntNumber(5), FloatNumber(5.5), false},
		{"uint float same value", UintNumber(math.MaxInt64 + 1), FloatNumber(math.Ldexp(1, 63)), true},
		{"uint int never overlap", UintNumber(math.MaxUint64), IntNumber(-1), false},
		{"large int float precision", IntNumber(math.MaxInt64), FloatNumber(math.Ldexp(1, 63)), false},
		{"float float", FloatNumber(0.1), FloatNumber(0.1), true},
		{"zero and negative zero", FloatNumber(0), FloatNumber(math.Copysign(0, -1)), true},
		{"nan not equal to itself", FloatNumber(math.NaN()), FloatNumber(math.NaN()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() not symmetric: %v, want %v", got, tt.want)
			}
		})
	}
}
