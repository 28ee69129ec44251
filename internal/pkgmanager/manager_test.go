package pkgmanager

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Manager
		wantErr bool
	}{
		{"npm", NPM, false},
		{"Yarn", Yarn, false},
		{" pnpm ", PNPM, false},
		{"bun", Bun, false},
		{"cargo", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		ua          string
		wantManager Manager
		wantVersion string
		wantOK      bool
	}{
		{"pnpm/9.1.0 npm/? node/v20.11.0 linux x64", PNPM, "9.1.0", true},
		{"yarn/1.22.19 npm/? node/v18.16.0 darwin arm64", Yarn, "1.22.19", true},
		{"bun/1.1.0", Bun, "1.1.0", true},
		{"npm/v10.2.4 node/v20.11.0", NPM, "10.2.4", true},
		{"pnpm/next", PNPM, "", true},
		{"deno/1.40.0", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		m, v, ok := ParseUserAgent(tt.ua)
		if ok != tt.wantOK || m != tt.wantManager {
			t.Errorf("ParseUserAgent(%q) = (%q, %v), want (%q, %v)", tt.ua, m, ok, tt.wantManager, tt.wantOK)
			continue
		}
		gotVersion := ""
		if v != nil {
			gotVersion = v.String()
		}
		if gotVersion != tt.wantVersion {
			t.Errorf("ParseUserAgent(%q) version = %q, want %q", tt.ua, gotVersion, tt.wantVersion)
		}
	}
}

func TestRunScript(t *testing.T) {
	got := Yarn.RunScript("dev")
	want := []string{"yarn", "run", "dev"}
	if len(got) != len(want) {
		t.Fatalf("RunScript() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RunScript()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
