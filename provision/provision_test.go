package provision

import (
	"errors"
	"reflect"
	"testing"
)

func recordingSteps(calls *[]string, failing string) []step {
	names := []string{"system-packages", "package-build", "virtual-display", "unit-tests"}

	var steps []step
	for _, name := range names {
		name := name
		steps = append(steps, step{name: name, fn: func() error {
			*calls = append(*calls, name)
			if name == failing {
				return errors.New("injected failure")
			}
			return nil
		}})
	}

	return steps
}

func TestApplyFailFast(t *testing.T) {
	tests := []struct {
		name      string
		failing   string
		only      []string
		wantCalls []string
		wantErr   bool
	}{
		{
			name:      "All steps run in order",
			wantCalls: []string{"system-packages", "package-build", "virtual-display", "unit-tests"},
		},
		{
			name:      "First failure halts the sequence",
			failing:   "package-build",
			wantCalls: []string{"system-packages", "package-build"},
			wantErr:   true,
		},
		{
			name:      "Failure in first step runs nothing else",
			failing:   "system-packages",
			wantCalls: []string{"system-packages"},
			wantErr:   true,
		},
		{
			name:      "Step filter",
			only:      []string{"virtual-display", "unit-tests"},
			wantCalls: []string{"virtual-display", "unit-tests"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			err := apply(recordingSteps(&calls, tt.failing), tt.only)
			if (err != nil) != tt.wantErr {
				t.Fatalf("apply() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(calls, tt.wantCalls) {
				t.Errorf("apply() ran %v, want %v", calls, tt.wantCalls)
			}
		})
	}
}

func TestStepTitle(t *testing.T) {
	tests := []struct {
		name     string
		stepName string
		want     string
	}{
		{
			name:     "Multi word step",
			stepName: "system-packages",
			want:     "System Packages",
		},
		{
			name:     "Single word step",
			stepName: "tests",
			want:     "Tests",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stepTitle(tt.stepName); got != tt.want {
				t.Errorf("stepTitle() got = %v, want %v", got, tt.want)
			}
		})
	}
}
