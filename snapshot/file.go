package snapshot

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/hupe1980/labelcell"
	"github.com/hupe1980/labelcell/internal/fs"
)

// SaveFile atomically replaces the file at path with a snapshot of cells.
//
// The snapshot is written to path+".tmp", synced and renamed over path, so a
// crash leaves either the previous file or the new one. The temporary file is
// removed on failure.
func SaveFile[W labelcell.Weight, H labelcell.Histogram[W]](ctx context.Context, path string, cells []labelcell.Cell[W, H], optFns ...Option) error {
	fsys := newOptions(optFns).FileSystem
	tmpPath := path + ".tmp"

	f, err := fsys.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := Save(ctx, bw, cells, optFns...); err != nil {
		f.Close()
		fsys.Remove(tmpPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		fsys.Remove(tmpPath)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		fsys.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		fsys.Remove(tmpPath)
		return err
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		fsys.Remove(tmpPath)
		return err
	}
	return syncDir(fsys, filepath.Dir(path))
}

// LoadFile reads every cell of the snapshot file at path.
func LoadFile[W labelcell.Weight, H labelcell.Histogram[W]](ctx context.Context, path string, optFns ...Option) ([]labelcell.Cell[W, H], error) {
	fsys := newOptions(optFns).FileSystem

	f, err := fsys.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load[W, H](ctx, bufio.NewReader(f), optFns...)
}

func syncDir(fsys fs.FileSystem, dir string) error {
	d, err := fsys.OpenFile(dir, os.O_RDONLY, 0)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
