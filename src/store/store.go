// Package store keeps a history of sort runs in a SQL database through xorm.
package store

import (
	"os"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"xorm.io/xorm"
	"xorm.io/xorm/names"
)

const tablePrefix = "sd_"

// Run is one algorithm applied to one input.
type Run struct {
	Id        int64     `xorm:"pk autoincr"`
	Algorithm string    `xorm:"varchar(32) notnull index"`
	Size      int       `xorm:"notnull"`
	Input     []int     `xorm:"text notnull"`
	Output    []int     `xorm:"text notnull"`
	Sorted    bool      `xorm:"notnull"`
	Elapsed   int64     `xorm:"notnull"`
	Created   time.Time `xorm:"created"`
}

func (r *Run) Duration() time.Duration {
	return time.Duration(r.Elapsed)
}

type Store struct {
	engine *xorm.Engine
	driver string
}

// Open connects to the database named by metaURL, for example
// "mysql://user:pass@(127.0.0.1:3306)/sortdemo" or "sqlite3:///tmp/sortdemo.db",
// and creates the run table when it is missing.
func Open(metaURL string) (*Store, error) {
	p := strings.Index(metaURL, "://")
	if p < 0 {
		return nil, errors.Errorf("invalid meta url %q: missing scheme", metaURL)
	}
	driver, addr := metaURL[:p], metaURL[p+3:]

	var dsn string
	switch driver {
	case "mysql":
		var err error
		if dsn, err = mysqlDSN(addr); err != nil {
			return nil, err
		}
	case "sqlite3":
		if addr == "" {
			return nil, errors.Errorf("invalid meta url %q: empty path", metaURL)
		}
		dsn = addr
	default:
		return nil, errors.Errorf("unsupported meta engine %q", driver)
	}

	engine, err := xorm.NewEngine(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", driver)
	}
	if err = engine.Ping(); err != nil {
		_ = engine.Close()
		return nil, errors.Wrapf(err, "ping %s", driver)
	}
	engine.SetTableMapper(names.NewPrefixMapper(engine.GetTableMapper(), tablePrefix))
	if err = engine.Sync2(new(Run)); err != nil {
		_ = engine.Close()
		return nil, errors.Wrap(err, "sync run table")
	}
	return &Store{engine: engine, driver: driver}, nil
}

// mysqlDSN turns "user:pass@(host:port)/db" into a go-sql-driver DSN. An empty
// password is taken from META_PASSWORD.
func mysqlDSN(addr string) (string, error) {
	if p := strings.Index(addr, "@("); p >= 0 {
		addr = addr[:p+1] + "tcp" + addr[p+1:]
	}
	cfg, err := mysql.ParseDSN(addr)
	if err != nil {
		return "", errors.Wrap(err, "parse mysql address")
	}
	if cfg.Passwd == "" {
		cfg.Passwd = os.Getenv("META_PASSWORD")
	}
	if cfg.Params == nil {
		cfg.Params = make(map[string]string)
	}
	if _, ok := cfg.Params["charset"]; !ok {
		cfg.Params["charset"] = "utf8mb4"
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// Driver returns the database driver name taken from the meta url scheme.
func (s *Store) Driver() string {
	return s.driver
}

// ShowSQL toggles logging of every statement.
func (s *Store) ShowSQL(show bool) {
	s.engine.ShowSQL(show)
}

func (s *Store) Save(run *Run) error {
	if _, err := s.engine.Insert(run); err != nil {
		return errors.Wrapf(err, "save %s run", run.Algorithm)
	}
	return nil
}

// List returns stored runs newest first. An empty algorithm matches all runs
// and a non-positive limit returns everything.
func (s *Store) List(algorithm string, limit int) ([]Run, error) {
	sess := s.engine.Desc("id")
	if algorithm != "" {
		sess = sess.Where("algorithm = ?", algorithm)
	}
	if limit > 0 {
		sess = sess.Limit(limit)
	}
	var runs []Run
	if err := sess.Find(&runs); err != nil {
		return nil, errors.Wrap(err, "list runs")
	}
	return runs, nil
}

func (s *Store) Close() error {
	return s.engine.Close()
}
