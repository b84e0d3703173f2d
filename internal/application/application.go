package application

import (
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/eugenenazirov/math-tools/internal/expi"
)

const (
	// DefaultAngle is the angle, in radians, the program evaluates.
	DefaultAngle = 1.0
	// Greeting is the first line the program prints.
	Greeting = "Hello World!"
)

// Option configures the behaviour of New.
type Option func(*App)

// WithEvaluator overrides the default trigonometric evaluator (primarily for tests).
func WithEvaluator(evaluator expi.Evaluator) Option {
	return func(a *App) {
		a.evaluator = evaluator
	}
}

// WithAngle overrides the evaluated angle.
func WithAngle(angle float64) Option {
	return func(a *App) {
		a.angle = angle
	}
}

// App encapsulates the driver dependencies.
type App struct {
	evaluator expi.Evaluator
	angle     float64
	logger    *zap.Logger
}

// New initializes the driver. A nil logger is replaced by a no-op one.
func New(logger *zap.Logger, opts ...Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{
		evaluator: expi.New(),
		angle:     DefaultAngle,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Run prints the greeting followed by the evaluated result line.
func (a *App) Run(w io.Writer) error {
	if err := a.Greet(w); err != nil {
		return err
	}
	return a.evaluate(w)
}

// Greet writes the greeting line.
func (a *App) Greet(w io.Writer) error {
	if _, err := io.WriteString(w, Greeting+"\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	return nil
}

// evaluate is the failure boundary: a panic anywhere below it surfaces as ErrFault.
func (a *App) evaluate(w io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFault, r)
		}
	}()

	z := a.evaluator.ExpNegI(a.angle)
	a.logger.Debug("evaluated e^(-ix)",
		zap.Float64("angle", a.angle),
		zap.Float64("real", real(z)),
		zap.Float64("imag", imag(z)),
	)

	if _, err := io.WriteString(w, Format(a.angle, z)); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	return nil
}

// Format renders the result line for angle x and value z, newline included.
func Format(x float64, z complex128) string {
	return fmt.Sprintf("e^(-i * %s) = %s + %si\n", formatFloat(x), formatFloat(real(z)), formatFloat(imag(z)))
}

// formatFloat prints six significant digits with trailing zeros trimmed.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
