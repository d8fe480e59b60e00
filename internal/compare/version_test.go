package compare

import (
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Version
		wantErr bool
	}{
		{
			name:  "simple version",
			input: "0.8.2",
			want:  &Version{Major: 0, Minor: 8, Patch: 2},
		},
		{
			name:  "version with v prefix",
			input: "v0.8.2",
			want:  &Version{Major: 0, Minor: 8, Patch: 2},
		},
		{
			name:  "version with prerelease",
			input: "1.0.0-rc.1",
			want:  &Version{Major: 1, Minor: 0, Patch: 0, Prerelease: "rc.1"},
		},
		{
			name:  "version with alpha",
			input: "v2.0.0-alpha",
			want:  &Version{Major: 2, Minor: 0, Patch: 0, Prerelease: "alpha"},
		},
		{
			name:  "version with build metadata",
			input: "1.0.0+20130313144700",
			want:  &Version{Major: 1, Minor: 0, Patch: 0, Build: "20130313144700"},
		},
		{
			name:  "version with prerelease and build metadata",
			input: "1.0.0-beta+exp.sha.5114f85",
			want:  &Version{Major: 1, Minor: 0, Patch: 0, Prerelease: "beta", Build: "exp.sha.5114f85"},
		},
		{
			name:  "zero identifiers allowed",
			input: "0.0.0-0",
			want:  &Version{Major: 0, Minor: 0, Patch: 0, Prerelease: "0"},
		},
		{
			name:  "prerelease identifier with leading zero and letter",
			input: "1.0.0-0alpha",
			want:  &Version{Major: 1, Minor: 0, Patch: 0, Prerelease: "0alpha"},
		},
		{
			name:    "invalid format",
			input:   "invalid",
			wantErr: true,
		},
		{
			name:    "leading zero in major",
			input:   "01.2.3",
			wantErr: true,
		},
		{
			name:    "leading zero in patch",
			input:   "1.2.03",
			wantErr: true,
		},
		{
			name:    "leading zero in numeric prerelease identifier",
			input:   "1.0.0-01",
			wantErr: true,
		},
		{
			name:    "leading zero in dotted prerelease identifier",
			input:   "1.0.0-rc.01",
			wantErr: true,
		},
		{
			name:    "missing patch",
			input:   "1.0",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			input:   "1.0.0 stable",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseVersion() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if *got != *tt.want {
				t.Errorf("ParseVersion() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		name    string
		version *Version
		want    string
	}{
		{
			name:    "simple",
			version: &Version{Major: 1, Minor: 2, Patch: 3},
			want:    "1.2.3",
		},
		{
			name:    "with prerelease",
			version: &Version{Major: 1, Minor: 0, Patch: 0, Prerelease: "rc.1"},
			want:    "1.0.0-rc.1",
		},
		{
			name:    "with build metadata",
			version: &Version{Major: 1, Minor: 0, Patch: 0, Prerelease: "beta", Build: "001"},
			want:    "1.0.0-beta+001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.version.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "equal", a: "1.0.0", b: "1.0.0", want: 0},
		{name: "major greater", a: "2.0.0", b: "1.9.9", want: 1},
		{name: "minor less", a: "1.1.0", b: "1.2.0", want: -1},
		{name: "patch greater", a: "1.0.2", b: "1.0.1", want: 1},
		{name: "stable beats prerelease", a: "1.0.0", b: "1.0.0-rc.1", want: 1},
		{name: "prerelease below stable", a: "1.0.0-alpha", b: "1.0.0", want: -1},
		{name: "alpha below beta", a: "1.0.0-alpha", b: "1.0.0-beta", want: -1},
		{name: "numeric identifiers compare numerically", a: "1.0.0-rc.10", b: "1.0.0-rc.9", want: 1},
		{name: "numeric below alphanumeric", a: "1.0.0-1", b: "1.0.0-alpha", want: -1},
		{name: "shorter prerelease ranks lower", a: "1.0.0-alpha", b: "1.0.0-alpha.1", want: -1},
		{name: "build metadata ignored", a: "1.0.0+001", b: "1.0.0+002", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseVersion(tt.a)
			if err != nil {
				t.Fatalf("ParseVersion(%s) error = %v", tt.a, err)
			}
			b, err := ParseVersion(tt.b)
			if err != nil {
				t.Fatalf("ParseVersion(%s) error = %v", tt.b, err)
			}
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
