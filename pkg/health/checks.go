package health

import (
	"context"
	"fmt"
	"io/fs"
)

// FileCheck reports whether name can be stat'ed in fsys.
func FileCheck(fsys fs.FS, name string) CheckFunc {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fs.Stat(fsys, name); err != nil {
			return fmt.Errorf("%w: %w", ErrCheckFailed, err)
		}
		return nil
	}
}

// Condition turns a predicate into a check failing with msg.
func Condition(ok func() bool, msg string) CheckFunc {
	return func(context.Context) error {
		if !ok() {
			return fmt.Errorf("%w: %s", ErrCheckFailed, msg)
		}
		return nil
	}
}
