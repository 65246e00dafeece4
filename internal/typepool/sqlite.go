package typepool

import (
	"context"
	"database/sql"
	"os"
	"strings"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS types (
	name      TEXT PRIMARY KEY,
	position  INTEGER NOT NULL,
	interface INTEGER NOT NULL DEFAULT 0,
	super     TEXT NOT NULL DEFAULT '',
	enclosing TEXT NOT NULL DEFAULT '',
	signature TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS interfaces (
	type      TEXT NOT NULL,
	position  INTEGER NOT NULL,
	interface TEXT NOT NULL,
	PRIMARY KEY (type, position)
);
CREATE TABLE IF NOT EXISTS methods (
	type      TEXT NOT NULL,
	position  INTEGER NOT NULL,
	name      TEXT NOT NULL,
	returns   TEXT NOT NULL DEFAULT '',
	params    TEXT NOT NULL DEFAULT '',
	modifiers TEXT NOT NULL DEFAULT '',
	signature TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (type, position)
);`

// listSeparator joins params and modifiers in one column. Type names
// never contain it.
const listSeparator = ","

// openSQLite opens the database at path. Only writers create the schema;
// readers require the file to exist so a misspelled path is an error.
func openSQLite(ctx context.Context, path string, create bool) (*sql.DB, error) {
	if !create {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(err, "type database")
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	if create {
		if _, err := db.ExecContext(ctx, schema); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "creating schema in %s", path)
		}
	}
	return db, nil
}

// LoadSQLite reads all type entries from a database written by SaveSQLite
func LoadSQLite(ctx context.Context, path string) ([]TypeEntry, error) {
	db, err := openSQLite(ctx, path, false)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT name, interface, super, enclosing, signature FROM types ORDER BY position`)
	if err != nil {
		return nil, errors.Wrap(err, "querying types")
	}
	var entries []TypeEntry
	index := make(map[string]int)
	for rows.Next() {
		var e TypeEntry
		if err := rows.Scan(&e.Name, &e.Interface, &e.Super, &e.Outer, &e.Signature); err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "scanning type")
		}
		index[e.Name] = len(entries)
		entries = append(entries, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading types")
	}

	rows, err = db.QueryContext(ctx, `SELECT type, interface FROM interfaces ORDER BY type, position`)
	if err != nil {
		return nil, errors.Wrap(err, "querying interfaces")
	}
	for rows.Next() {
		var owner, itf string
		if err := rows.Scan(&owner, &itf); err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "scanning interface")
		}
		i, ok := index[owner]
		if !ok {
			rows.Close()
			return nil, errors.Errorf("interface %s of unknown type %s", itf, owner)
		}
		entries[i].Interfaces = append(entries[i].Interfaces, itf)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading interfaces")
	}

	rows, err = db.QueryContext(ctx, `SELECT type, name, returns, params, modifiers, signature FROM methods ORDER BY type, position`)
	if err != nil {
		return nil, errors.Wrap(err, "querying methods")
	}
	defer rows.Close()
	for rows.Next() {
		var owner, params, modifiers string
		var m MethodEntry
		if err := rows.Scan(&owner, &m.Name, &m.Returns, &params, &modifiers, &m.Signature); err != nil {
			return nil, errors.Wrap(err, "scanning method")
		}
		i, ok := index[owner]
		if !ok {
			return nil, errors.Errorf("method %s of unknown type %s", m.Name, owner)
		}
		m.Params = splitList(params)
		m.Modifiers = splitList(modifiers)
		entries[i].Methods = append(entries[i].Methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading methods")
	}
	return entries, nil
}

// SaveSQLite replaces the contents of the database at path with entries
func SaveSQLite(ctx context.Context, path string, entries []TypeEntry) (err error) {
	db, err := openSQLite(ctx, path, true)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "starting transaction")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"types", "interfaces", "methods"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return errors.Wrapf(err, "clearing %s", table)
		}
	}
	for pos, e := range entries {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO types (name, position, interface, super, enclosing, signature) VALUES (?, ?, ?, ?, ?, ?)`,
			e.Name, pos, e.Interface, e.Super, e.Outer, e.Signature); err != nil {
			return errors.Wrapf(err, "inserting type %s", e.Name)
		}
		for i, itf := range e.Interfaces {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO interfaces (type, position, interface) VALUES (?, ?, ?)`,
				e.Name, i, itf); err != nil {
				return errors.Wrapf(err, "inserting interface of %s", e.Name)
			}
		}
		for i, m := range e.Methods {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO methods (type, position, name, returns, params, modifiers, signature) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				e.Name, i, m.Name, m.Returns, strings.Join(m.Params, listSeparator), strings.Join(m.Modifiers, listSeparator), m.Signature); err != nil {
				return errors.Wrapf(err, "inserting method %s.%s", e.Name, m.Name)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "committing")
	}
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSeparator)
}
