// Package pgstorage -- пакет с реализацией postgresql типа хранилища.
package pgstorage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"loglint/cmd/server/initconf"
	"loglint/internal/database"
	"loglint/internal/storage"
)

// PgStorage postgresql хранилище для находок.
type PgStorage struct {
	conf         *initconf.Config
	pgDB         *database.Postgresql
	testDBPrefix string
}

// Таймауты повторных попыток при retriable ошибках соединения с СУБД.
var timeoutsRetryConst = [3]int{1, 3, 5}

// retriable проверка ошибки на принадлежность к классу Connection Exception.
func retriable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code)
	}
	return false
}

// execRetry выполнение запроса с повтором по таймаутам timeoutsRetryConst для retriable ошибок.
func (pg PgStorage) execRetry(ctx context.Context, query string, args ...interface{}) error {
	_, err := pg.pgDB.ExecContext(ctx, query, args...)
	if err == nil {
		return nil
	}
	if !retriable(err) {
		return err
	}
	for i, t := range timeoutsRetryConst {
		log.Println("execRetry: trying to recover after", t, "seconds, attempt number", i+1)
		time.Sleep(time.Duration(t) * time.Second)
		if _, err = pg.pgDB.ExecContext(ctx, query, args...); err == nil {
			return nil
		}
		log.Println("execRetry: attempt", i+1, "error:", err)
	}
	return fmt.Errorf("execRetry: retry attempts exhausted: %w", err)
}

// New -- конструктор объекта хранилища PgStorage. В режиме TestDBMode таблицы создаются
// со сгенерированным тестовым префиксом в названии.
func New(ctx context.Context, conf *initconf.Config) (PgStorage, error) {
	pg := &database.Postgresql{}
	log.Println("Connecting to database ...")
	if err := pg.Connect(conf.DatabaseDSN); err != nil {
		log.Println("Error connecting to database :", err)
		return PgStorage{}, err
	}

	stor := PgStorage{conf: conf, pgDB: pg}
	if conf.TestDBMode {
		stor.testDBPrefix = "test" + uuid.NewString()[:8] + "_"
	}

	log.Println("creating finding table")
	err := stor.execRetry(ctx, `CREATE TABLE IF NOT EXISTS `+stor.tableName()+` (
		"id" BIGSERIAL PRIMARY KEY,
		"run_id" TEXT,
		"analyzer" TEXT,
		"file" TEXT,
		"line" INTEGER,
		"col" INTEGER,
		"severity" TEXT,
		"message" TEXT
		)`)
	if err != nil {
		log.Println("Error creating table finding:", err)
		return PgStorage{}, err
	}
	return stor, nil
}

// tableName имя таблицы находок с учетом тестового префикса.
func (pg PgStorage) tableName() string {
	return pg.testDBPrefix + "finding"
}

// UpdateBatch -- реализация метода сохранения набора находок внутри одной транзакции.
func (pg PgStorage) UpdateBatch(ctx context.Context, findings []storage.Finding) error {
	log.Println("UpdateBatch PG. Start update batch of", len(findings), "findings")
	if len(findings) == 0 {
		log.Println("UpdateBatch PG. No findings to update in []Finding")
		return nil
	}
	tx, err := pg.pgDB.BeginTx(ctx, nil)
	if err != nil {
		log.Println("UpdateBatch PG: BeginTx error:", err)
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO ` + pg.tableName() +
		` (run_id, analyzer, file, line, col, severity, message) VALUES($1,$2,$3,$4,$5,$6,$7)`
	for _, f := range findings {
		if _, err = tx.ExecContext(ctx, query, f.RunID, f.Analyzer, f.File, f.Line, f.Column, f.Severity, f.Message); err != nil {
			log.Println("UpdateBatch PG: insert error:", err)
			return err
		}
	}
	return tx.Commit()
}

// GetRun -- реализация метода получения всех находок одного запуска по его идентификатору.
func (pg PgStorage) GetRun(ctx context.Context, runID string) ([]storage.Finding, error) {
	log.Println("GetRun PG")
	rows, err := pg.pgDB.QueryContext(ctx, `SELECT run_id, analyzer, file, line, col, severity, message FROM `+
		pg.tableName()+` WHERE run_id = $1 ORDER BY file, line, col`, runID)
	if err != nil {
		log.Println("Error PG GetRun:", err)
		return nil, err
	}
	defer rows.Close()

	var findings []storage.Finding
	for rows.Next() {
		var f storage.Finding
		if err = rows.Scan(&f.RunID, &f.Analyzer, &f.File, &f.Line, &f.Column, &f.Severity, &f.Message); err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(findings) == 0 {
		return nil, errors.New("no findings for run " + runID)
	}
	return findings, nil
}

// CountByAnalyzer -- реализация метода подсчета находок по анализаторам.
func (pg PgStorage) CountByAnalyzer(ctx context.Context) (map[string]int64, error) {
	log.Println("CountByAnalyzer PG")
	rows, err := pg.pgDB.QueryContext(ctx, `SELECT analyzer, count(*) FROM `+pg.tableName()+` GROUP BY analyzer`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var analyzer string
		var count int64
		if err = rows.Scan(&analyzer, &count); err != nil {
			return nil, err
		}
		counts[analyzer] = count
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Структура для выгрузки всех находок в форме, совместимой с dump файлом memstorage.
type tmpStor struct {
	RunMap map[string][]storage.Finding
}

// GetAllFindings -- реализация метода получения всех находок, сгруппированных по запускам.
func (pg PgStorage) GetAllFindings(ctx context.Context) (any, error) {
	log.Println("GetAllFindings PG")
	stor := tmpStor{
		RunMap: make(map[string][]storage.Finding),
	}
	rows, err := pg.pgDB.QueryContext(ctx, `SELECT run_id, analyzer, file, line, col, severity, message FROM `+
		pg.tableName()+` ORDER BY run_id, file, line, col`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f storage.Finding
		if err = rows.Scan(&f.RunID, &f.Analyzer, &f.File, &f.Line, &f.Column, &f.Severity, &f.Message); err != nil {
			return nil, err
		}
		stor.RunMap[f.RunID] = append(stor.RunMap[f.RunID], f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return stor, nil
}

// Ping -- проверка соединения с СУБД.
func (pg PgStorage) Ping(ctx context.Context) error {
	return pg.pgDB.PingContext(ctx)
}

func (pg PgStorage) Close() error {
	return pg.pgDB.Close()
}
