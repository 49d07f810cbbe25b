package main

import (
	"image"
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-01-01T06:00:00Z", want: time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)},
		{in: "2024-01-01T16:00:00+10:00", want: time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)},
		{in: "2024-01-01T06:00:00", want: time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)},
		{in: "2024-01-01T06:00", want: time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)},
		{in: "2024-01-01 06:00", want: time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)},
		{in: "2024-01-01", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: "  2024-01-01  ", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: "01/06/2024", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseTime(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseTime(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTime(%q): %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("parseTime(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "5m", want: 5 * time.Minute},
		{in: "5min", want: 5 * time.Minute},
		{in: "90s", want: 90 * time.Second},
		{in: "1h", want: time.Hour},
		{in: "2h45min", want: 2*time.Hour + 45*time.Minute},
		{in: "0", wantErr: true},
		{in: "-5m", wantErr: true},
		{in: "fast", wantErr: true},
		{in: "min", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseInterval(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseInterval(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseInterval(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("parseInterval(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseBounds(t *testing.T) {
	tests := []struct {
		in      string
		want    image.Rectangle
		wantErr bool
	}{
		{in: "10,20,110,220", want: image.Rect(10, 20, 110, 220)},
		{in: "(10,20,110,220)", want: image.Rect(10, 20, 110, 220)},
		{in: "10, 20, 110, 220", want: image.Rect(10, 20, 110, 220)},
		{in: "0,0,1,1", want: image.Rect(0, 0, 1, 1)},
		{in: "10,20", wantErr: true},
		{in: "a,b,c,d", wantErr: true},
		{in: "110,20,10,220", wantErr: true},
		{in: "10,220,110,20", wantErr: true},
		{in: "10,20,10,220", wantErr: true},
		{in: "-5,0,10,10", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseBounds(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseBounds(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseBounds(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("parseBounds(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
