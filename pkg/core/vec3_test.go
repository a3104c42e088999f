package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3_Normalize_UnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := NewVec3(random.NormFloat64()*100, random.NormFloat64()*1e-3, random.NormFloat64())
		if v.LengthSquared() == 0 {
			continue
		}
		u := Unit(v)
		if math.Abs(u.Length()-1) > UnitTolerance {
			t.Fatalf("Normalize(%v) has length %.12f", v, u.Length())
		}
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	if got := NewVec3(0, 0, 0).Normalize(); !got.Equals(Vec3{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

func TestVec3_NormalizeWithLength(t *testing.T) {
	u, l := NewVec3(0, 3, 4).NormalizeWithLength()
	if math.Abs(l-5) > 1e-12 {
		t.Errorf("Expected length 5, got %f", l)
	}
	if !u.Equals(NewVec3(0, 0.6, 0.8)) {
		t.Errorf("Expected (0, 0.6, 0.8), got %v", u)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, 7, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, -3, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, 10, 18)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if a.Dot(b) != 32 {
		t.Errorf("Expected dot 32, got %f", a.Dot(b))
	}
	if a.MinComponent() != 1 || a.MaxComponent() != 3 {
		t.Errorf("Unexpected min/max component for %v", a)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		incoming Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "head on",
			incoming: NewVec3(0, 0, -1),
			normal:   NewVec3(0, 0, 1),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "45 degrees",
			incoming: NewVec3(1, 0, -1).Normalize(),
			normal:   NewVec3(0, 0, 1),
			expected: NewVec3(1, 0, 1).Normalize(),
		},
		{
			name:     "grazing",
			incoming: NewVec3(1, 0, 0),
			normal:   NewVec3(0, 0, 1),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.incoming, tt.normal)
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if !IsUnit(got) {
				t.Errorf("Reflected direction %v is not unit length", got)
			}
		})
	}
}

func TestRayCastInfo_Next(t *testing.T) {
	info := NewRayCastInfo()
	if info.Depth() != 0 {
		t.Fatalf("Expected depth 0, got %d", info.Depth())
	}

	next := info.Next()
	if next.Depth() != 1 {
		t.Errorf("Expected depth 1, got %d", next.Depth())
	}
	if info.Depth() != 0 {
		t.Errorf("Next must not mutate the original, got depth %d", info.Depth())
	}
	if next.Next().Next().Depth() != 3 {
		t.Errorf("Expected depth 3 after three increments")
	}
}
