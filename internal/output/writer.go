package output

import (
	"os"
	"path/filepath"
	"time"

	"resloader-generator/internal/errors"
	"resloader-generator/internal/gen"
	"resloader-generator/internal/logger"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// IsFresh reports whether the file at path exists and was modified no earlier
// than newest. Content is not compared.
func IsFresh(path string, newest time.Time) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}

	if err != nil {
		return false, errors.IO(errors.Wrapf(err, "checking %s", path))
	}

	if info.IsDir() {
		return false, errors.IO(errors.Newf("output path %s is a directory", path))
	}

	return !info.ModTime().Before(newest), nil
}

// Write writes unit to its path unless the file there is already at least as
// new as newest. Missing parent directories are created.
//
// The content goes to a temporary file in the target directory that is then
// renamed over the target, so readers see either the old file or the complete
// new one.
func Write(unit *gen.RenderedUnit, newest time.Time) (Outcome, error) {
	fresh, err := IsFresh(unit.Path, newest)
	if err != nil {
		return OutcomeUnknown, err
	}

	if fresh {
		logger.Logger.Debugw("output up to date", "path", unit.Path)
		return OutcomeSkipped, nil
	}

	dir := filepath.Dir(unit.Path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return OutcomeUnknown, errors.IO(errors.Wrap(err, "creating output directory"))
	}

	if err := writeAtomic(unit.Path, unit.Content); err != nil {
		return OutcomeUnknown, errors.IO(errors.Wrapf(err, "writing file %s", unit.Path))
	}

	return OutcomeWritten, nil
}

func writeAtomic(path string, content []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return err
	}

	if err = tmp.Chmod(filePerm); err != nil {
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
