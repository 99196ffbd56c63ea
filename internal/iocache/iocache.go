// Package iocache keeps rows read from IUCN exports and results of
// name parsing in a Badger key-value store, so repeated runs do not
// need to decode and parse the same data again.
//
// Rows are stored under a stamp made from the paths, sizes and
// modification times of the input files. Only the latest snapshot of
// rows is kept.
package iocache

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/gnames/gnsys"
	"github.com/gnames/gnuuid"
)

const (
	rowsPrefix   = "rows/"
	donePrefix   = "done/"
	parsedPrefix = "parsed/"
)

// Parsed is a cached result of parsing a scientific name.
type Parsed struct {
	Canonical string
	Quality   int
}

// Cache is a persistent store of rows and parsed names.
type Cache struct {
	dir string
	db  *badger.DB
	enc gnfmt.GNgob
}

// Open creates the cache directory if needed and opens the store.
func Open(dir string) (*Cache, error) {
	if err := gnsys.MakeDir(dir); err != nil {
		return nil, OpenError(dir, err)
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, OpenError(dir, err)
	}
	slog.Info("Cache opened", "dir", dir)
	return &Cache{dir: dir, db: db}, nil
}

// Close closes the store. It is safe to call Close several times.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Clear removes everything from the store.
func (c *Cache) Clear() error {
	if c.db == nil {
		return NotOpenError()
	}
	if err := c.db.DropAll(); err != nil {
		return WriteError("all", err)
	}
	slog.Info("Cache cleared", "dir", c.dir)
	return nil
}

// Stamp identifies the state of input files. It changes when any file
// is moved, resized or modified. Empty paths are ignored.
func Stamp(paths ...string) (string, error) {
	var parts []string
	for _, v := range paths {
		if v == "" {
			continue
		}
		abs, err := filepath.Abs(v)
		if err != nil {
			return "", err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf(
			"%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano(),
		))
	}
	return gnuuid.New(strings.Join(parts, "\n")).String(), nil
}

// StoreRows replaces the cached rows with a new snapshot.
func (c *Cache) StoreRows(stamp string, rows []redlist.Row) error {
	if c.db == nil {
		return NotOpenError()
	}
	for _, v := range []string{donePrefix, rowsPrefix} {
		if err := c.db.DropPrefix([]byte(v)); err != nil {
			return WriteError(v, err)
		}
	}

	wb := c.db.NewWriteBatch()
	defer wb.Cancel()
	for i, v := range rows {
		val, err := c.enc.Encode(v)
		if err != nil {
			return WriteError(v.ID, err)
		}
		if err = wb.Set(rowKey(stamp, i), val); err != nil {
			return WriteError(v.ID, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return WriteError(stamp, err)
	}

	// the snapshot is complete only after its done key is written
	count, err := c.enc.Encode(len(rows))
	if err != nil {
		return WriteError(stamp, err)
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(donePrefix+stamp), count)
	})
	if err != nil {
		return WriteError(stamp, err)
	}
	slog.Info("Rows saved to cache", "rows", len(rows))
	return nil
}

// Rows returns cached rows for the stamp. If there is no complete
// snapshot for the stamp, ok is false.
func (c *Cache) Rows(stamp string) (rows []redlist.Row, ok bool, err error) {
	if c.db == nil {
		return nil, false, NotOpenError()
	}

	var count int
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(donePrefix + stamp))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return c.enc.Decode(val, &count)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ReadError(stamp, err)
	}

	rows = make([]redlist.Row, 0, count)
	prefix := []byte(rowsPrefix + stamp + "/")
	err = c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var row redlist.Row
			err := it.Item().Value(func(val []byte) error {
				return c.enc.Decode(val, &row)
			})
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}
		return nil
	})
	if err != nil {
		return nil, false, ReadError(stamp, err)
	}
	if len(rows) != count {
		slog.Warn("Incomplete rows snapshot in cache",
			"expected", count, "found", len(rows))
		return nil, false, nil
	}
	return rows, true, nil
}

// StoreParsed saves the result of parsing a name.
func (c *Cache) StoreParsed(name string, p Parsed) error {
	if c.db == nil {
		return NotOpenError()
	}
	val, err := c.enc.Encode(p)
	if err != nil {
		return WriteError(name, err)
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(parsedKey(name), val)
	})
	if err != nil {
		return WriteError(name, err)
	}
	return nil
}

// Parsed returns a cached result of parsing a name.
func (c *Cache) Parsed(name string) (Parsed, bool, error) {
	var res Parsed
	if c.db == nil {
		return res, false, NotOpenError()
	}
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(parsedKey(name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return c.enc.Decode(val, &res)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return res, false, nil
	}
	if err != nil {
		return res, false, ReadError(name, err)
	}
	return res, true, nil
}

func rowKey(stamp string, idx int) []byte {
	return fmt.Appendf(nil, "%s%s/%09d", rowsPrefix, stamp, idx)
}

func parsedKey(name string) []byte {
	return []byte(parsedPrefix + gnuuid.New(name).String())
}
