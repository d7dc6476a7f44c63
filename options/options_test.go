package options

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"
)

func parse(t *testing.T, args []string, env map[string]string) (*WindowOptions, error) {
	t.Helper()
	fs := flag.NewFlagSet("maxwindow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return Parse(fs, args, func(k string) string { return env[k] })
}

func TestDefaults(t *testing.T) {
	o, err := parse(t, nil, nil)
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if *o.Title != "Max Window" {
		t.Errorf("Title = %q", *o.Title)
	}
	if *o.Samples != 4 {
		t.Errorf("Samples = %d, want 4", *o.Samples)
	}
	if *o.Interrupt != InterruptGraceful {
		t.Errorf("Interrupt = %q, want %q", *o.Interrupt, InterruptGraceful)
	}
	c, err := o.Color()
	if err != nil {
		t.Fatalf("Color() = %v", err)
	}
	if c != [4]float32{0.2, 0.3, 0.3, 1.0} {
		t.Errorf("Color() = %v", c)
	}
}

func TestEnvFallback(t *testing.T) {
	env := map[string]string{
		"MAXWINDOW_INTERRUPT": "exit",
		"MAXWINDOW_STATS":     "5s",
		"MAXWINDOW_DEBUG":     "true",
	}
	o, err := parse(t, nil, env)
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if *o.Interrupt != InterruptExit {
		t.Errorf("Interrupt = %q, want exit", *o.Interrupt)
	}
	if *o.Stats != 5*time.Second {
		t.Errorf("Stats = %v, want 5s", *o.Stats)
	}
	if !*o.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestFlagBeatsEnv(t *testing.T) {
	env := map[string]string{"MAXWINDOW_INTERRUPT": "exit", "MAXWINDOW_DEBUG": "true"}
	o, err := parse(t, []string{"-interrupt", "graceful", "-verbose=false"}, env)
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if *o.Interrupt != InterruptGraceful {
		t.Errorf("Interrupt = %q, want graceful", *o.Interrupt)
	}
	if *o.Verbose {
		t.Error("Verbose = true, want false")
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"negative samples", []string{"-samples", "-1"}, nil},
		{"short color", []string{"-clear", "0.1,0.2,0.3"}, nil},
		{"color out of range", []string{"-clear", "0,0,2,1"}, nil},
		{"color not a number", []string{"-clear", "a,b,c,d"}, nil},
		{"unknown policy", []string{"-interrupt", "ignore"}, nil},
		{"negative stats", []string{"-stats", "-1s"}, nil},
		{"bad stats env", nil, map[string]string{"MAXWINDOW_STATS": "often"}},
		{"bad debug env", nil, map[string]string{"MAXWINDOW_DEBUG": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args, tt.env)
			if !errors.Is(err, ErrInvalidOption) {
				t.Errorf("Parse() = %v, want ErrInvalidOption", err)
			}
		})
	}
}

func TestHelpSurvivesBadEnv(t *testing.T) {
	env := map[string]string{"MAXWINDOW_STATS": "often", "MAXWINDOW_DEBUG": "maybe"}
	o, err := parse(t, []string{"-help"}, env)
	if !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Parse() = %v, want ErrInvalidOption", err)
	}
	if o == nil {
		t.Fatal("Parse() returned nil options")
	}
	if !*o.Help {
		t.Error("Help = false, want true")
	}
}
