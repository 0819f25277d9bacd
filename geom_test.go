package main

import (
	"math"
	"testing"
)

func TestCircDistSq(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want float64
	}{
		{Vec3{0, 0, 0}, Vec3{0, 0, 0}, 0},
		{Vec3{0.9, 0, 0}, Vec3{0, 0, 0}, 0.01},
		{Vec3{0.5, 0.5, 0.5}, Vec3{-0.5, -0.5, -0.5}, 0},
		{Vec3{1.25, 0, 0}, Vec3{0.25, 0, 0}, 0},
		{Vec3{0.1, 0.2, 0.3}, Vec3{0.2, 0.2, 0.3}, 0.01},
	}
	for _, test := range tests {
		got := circDistSq(test.a, test.b)
		if math.Abs(got-test.want) > 1e-12 {
			t.Errorf("circDistSq(%v, %v): got %v, wanted %v",
				test.a, test.b, got, test.want)
		}
	}
}

func TestIntMatMul(t *testing.T) {
	c2z := IntMat{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	if got := c2z.Mul(c2z); got != Identity() {
		t.Errorf("got %v, wanted identity", got)
	}
}

func TestIntMatInv(t *testing.T) {
	tests := []IntMat{
		Identity(),
		{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{1, 1, 0}, {0, 1, 0}, {0, 0, 1}},
		{{1, 2, 3}, {0, 1, 4}, {0, 0, 1}},
	}
	for _, m := range tests {
		if got := m.Mul(m.Inv()); got != Identity() {
			t.Errorf("m*inv(m): got %v, wanted identity for m=%v", got, m)
		}
	}
}

func TestIntMatDet(t *testing.T) {
	tests := []struct {
		m    IntMat
		want int
	}{
		{Identity(), 1},
		{IntMat{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, -1},
		{IntMat{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, 1},
		{IntMat{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 2},
	}
	for _, test := range tests {
		if got := test.m.Det(); got != test.want {
			t.Errorf("got %v, wanted %v", got, test.want)
		}
	}
}

func TestIntMatTranspose(t *testing.T) {
	m := IntMat{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	want := IntMat{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}
	if got := m.Transpose(); got != want {
		t.Errorf("got %v, wanted %v", got, want)
	}
}
