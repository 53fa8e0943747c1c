package common

import (
	"math"
	"testing"
)

func TestNormalizeAxis(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{720 + 45, 45},
	}
	for _, c := range cases {
		if got := NormalizeAxis(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("NormalizeAxis(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRotatorVectorRoundTrip(t *testing.T) {
	cases := []Rotator{
		{Pitch: 0, Yaw: 0},
		{Pitch: 30, Yaw: 45},
		{Pitch: -20, Yaw: -135},
		{Pitch: 60, Yaw: 170},
	}
	for _, r := range cases {
		got := r.Vector().Rotation()
		if !got.NearlyEqual(r, 1e-6) {
			t.Fatalf("round trip %+v -> %+v", r, got)
		}
	}
}

func TestRotatorBasisIsOrthonormal(t *testing.T) {
	r := Rotator{Pitch: 25, Yaw: -70}
	f, rt, up := r.Vector(), r.Right(), r.Up()
	for name, d := range map[string]float64{
		"f.r":  f.Dot(rt),
		"f.u":  f.Dot(up),
		"r.u":  rt.Dot(up),
		"|f|":  f.Len() - 1,
		"|r|":  rt.Len() - 1,
		"|up|": up.Len() - 1,
	} {
		if math.Abs(d) > 1e-9 {
			t.Fatalf("%s = %v, want 0", name, d)
		}
	}
}

func TestRInterpTo(t *testing.T) {
	tests := []struct {
		name    string
		current Rotator
		target  Rotator
		dt      float64
		speed   float64
		want    Rotator
	}{
		{"zero_dt_keeps_current", Rotator{Yaw: 10}, Rotator{Yaw: 50}, 0, 1, Rotator{Yaw: 10}},
		{"zero_speed_snaps", Rotator{Yaw: 10}, Rotator{Yaw: 50}, 0.016, 0, Rotator{Yaw: 50}},
		{"half_step", Rotator{Yaw: 10}, Rotator{Yaw: 50}, 0.5, 1, Rotator{Yaw: 30}},
		{"step_clamped_to_target", Rotator{Pitch: -10}, Rotator{Pitch: 10}, 1, 5, Rotator{Pitch: 10}},
		{"shortest_path_across_seam", Rotator{Yaw: 170}, Rotator{Yaw: -170}, 0.5, 1, Rotator{Yaw: 180}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RInterpTo(tc.current, tc.target, tc.dt, tc.speed)
			if !got.NearlyEqual(tc.want, 1e-6) {
				t.Fatalf("RInterpTo = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSafeNormalOfZero(t *testing.T) {
	if got := (Vec3{}).SafeNormal(); got != (Vec3{}) {
		t.Fatalf("expected zero vector, got %+v", got)
	}
}
