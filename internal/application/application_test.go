package application

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/eugenenazirov/math-tools/internal/expi"
)

type panickingEvaluator struct{}

func (panickingEvaluator) ExpNegI(float64) complex128 {
	panic("evaluator exploded")
}

type fixedEvaluator complex128

func (f fixedEvaluator) ExpNegI(float64) complex128 {
	return complex128(f)
}

type failingWriter struct {
	failAfter int
	writes    int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.failAfter {
		return 0, errors.New("disk full")
	}
	return len(p), nil
}

func TestRunPrintsGreetingAndResult(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := New(zaptest.NewLogger(t)).Run(&out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := "Hello World!\ne^(-i * 1) = 0.540302 + -0.841471i\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", out.String(), want)
	}
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	app := New(nil)
	if app.angle != DefaultAngle {
		t.Fatalf("expected default angle %v, got %v", DefaultAngle, app.angle)
	}
	if app.evaluator == nil || app.logger == nil {
		t.Fatalf("expected evaluator and logger to be initialized")
	}
}

func TestRunWithOptions(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	app := New(zaptest.NewLogger(t), WithAngle(0), WithEvaluator(expi.NewGeneric()))
	if err := app.Run(&out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := "Hello World!\ne^(-i * 0) = 1 + -0i\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", out.String(), want)
	}
}

func TestRunRecoversFault(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := New(zaptest.NewLogger(t), WithEvaluator(panickingEvaluator{})).Run(&out)
	if !errors.Is(err, ErrFault) {
		t.Fatalf("expected ErrFault, got %v", err)
	}
	if out.String() != Greeting+"\n" {
		t.Fatalf("expected only the greeting on the fault path, got %q", out.String())
	}
}

func TestRunReportsWriteFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		failAfter int
	}{
		{name: "Greeting", failAfter: 0},
		{name: "Result", failAfter: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := &failingWriter{failAfter: tc.failAfter}
			if err := New(zaptest.NewLogger(t)).Run(w); !errors.Is(err, ErrOutput) {
				t.Fatalf("expected ErrOutput, got %v", err)
			}
		})
	}
}

func TestRunLogsEvaluationAtDebug(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	if err := New(zap.New(core), WithEvaluator(fixedEvaluator(complex(0.25, -0.5)))).Run(&out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	entries := logs.FilterMessage("evaluated e^(-ix)").All()
	if len(entries) != 1 {
		t.Fatalf("expected one evaluation entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["real"] != 0.25 || fields["imag"] != -0.5 {
		t.Fatalf("unexpected logged fields: %v", fields)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    float64
		z    complex128
		want string
	}{
		{
			name: "FixedAngle",
			x:    1,
			z:    expi.ExpNegI(1),
			want: "e^(-i * 1) = 0.540302 + -0.841471i\n",
		},
		{
			name: "NegativeAngle",
			x:    -2.5,
			z:    complex(-0.801144, 0.598472),
			want: "e^(-i * -2.5) = -0.801144 + 0.598472i\n",
		},
		{
			name: "LargeAngle",
			x:    1e6,
			z:    complex(0.5, -0.25),
			want: "e^(-i * 1e+06) = 0.5 + -0.25i\n",
		},
		{
			name: "NaN",
			x:    math.NaN(),
			z:    complex(math.NaN(), math.NaN()),
			want: "e^(-i * NaN) = NaN + NaNi\n",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tc.x, tc.z); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
