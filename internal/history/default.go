package history

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultStore struct {
	db *sql.DB
}

func (s *DefaultStore) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists conversions
	  (
		  id text not null primary key,
		  sum text,
		  output text,
		  created timestamp
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultStore) Seen(sum string) (bool, error) {
	var count int
	err := s.db.QueryRow("select count(1) from conversions where sum = ?", sum).Scan(&count)
	if nil != err {
		return false, err
	}
	return count > 0, nil
}

func (s *DefaultStore) Record(sum, output string) error {
	_, err := s.db.Exec("insert into conversions(id, sum, output, created) values(?, ?, ?, ?)",
		uuid.NewString(), sum, output, time.Now())
	return err
}
