package portconf

import "testing"

func TestNeedsUpdate(t *testing.T) {
	tests := []struct {
		name    string
		live    []string
		desired []string
		want    bool
	}{
		{
			name:    "equal after header strip",
			live:    []string{"interface Eth1", "switchport mode trunk", "x"},
			desired: []string{"switchport mode trunk", "x"},
			want:    false,
		},
		{
			name:    "equal regardless of order",
			live:    []string{"interface Eth1", "x", "switchport mode trunk"},
			desired: []string{"switchport mode trunk", "x"},
			want:    false,
		},
		{
			name:    "different content",
			live:    []string{"interface Eth1", "switchport mode access"},
			desired: []string{"switchport mode trunk"},
			want:    true,
		},
		{
			name:    "live has only the header",
			live:    []string{"interface Eth1"},
			desired: []string{"switchport mode trunk"},
			want:    true,
		},
		{
			name:    "both empty after strip",
			live:    []string{"interface Eth1"},
			desired: nil,
			want:    false,
		},
		{
			name:    "live empty entirely",
			live:    nil,
			desired: []string{"switchport mode trunk"},
			want:    true,
		},
		{
			name:    "extra live line",
			live:    []string{"interface Eth1", "switchport mode trunk", "x", "y"},
			desired: []string{"switchport mode trunk", "x"},
			want:    true,
		},
		{
			name:    "missing live line",
			live:    []string{"interface Eth1", "switchport mode trunk"},
			desired: []string{"switchport mode trunk", "x"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsUpdate(tt.live, tt.desired); got != tt.want {
				t.Errorf("NeedsUpdate(%v, %v) = %v, want %v", tt.live, tt.desired, got, tt.want)
			}
		})
	}
}
