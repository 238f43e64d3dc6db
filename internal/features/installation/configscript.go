package installation

import (
	"context"
	"fmt"
	"time"

	"go-marketplace/internal/common/apperr"
	"go-marketplace/internal/models"

	"github.com/d5/tengo/v2"
)

const (
	scriptTimeout   = 200 * time.Millisecond
	scriptMaxAllocs = 10000
)

// compileConfigScript binds the merged configuration as the map variable
// "config" and an empty "reject" string, then compiles src. A script rejects
// the configuration by assigning a non-empty string to "reject".
func compileConfigScript(src string, config models.ConfigMap) (*tengo.Compiled, error) {
	script := tengo.NewScript([]byte(src))
	script.SetMaxAllocs(scriptMaxAllocs)

	if err := script.Add("config", config.Plain()); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}
	if err := script.Add("reject", ""); err != nil {
		return nil, fmt.Errorf("failed to bind reject: %w", err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("%w: configuration script does not compile: %v", apperr.ErrValidationFailed, err)
	}
	return compiled, nil
}

// CheckConfigScript reports whether src compiles as a configuration script.
// The empty script is valid.
func CheckConfigScript(src string) error {
	if src == "" {
		return nil
	}
	_, err := compileConfigScript(src, models.ConfigMap{})
	return err
}

// validateConfig runs an extension's ConfigScript against the merged
// configuration.
func validateConfig(ctx context.Context, src string, config models.ConfigMap) error {
	if src == "" {
		return nil
	}

	compiled, err := compileConfigScript(src, config)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()
	if err := compiled.RunContext(ctx); err != nil {
		return fmt.Errorf("%w: configuration script failed: %v", apperr.ErrValidationFailed, err)
	}

	if msg := compiled.Get("reject").String(); msg != "" {
		return fmt.Errorf("%w: %s", apperr.ErrValidationFailed, msg)
	}
	return nil
}
