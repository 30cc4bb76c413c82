package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/institutoins/kpi-manager-api/infrastructure/database/postgres"
	"github.com/institutoins/kpi-manager-api/internal/domain"
)

const (
	dadosKpisTable   = "dados_kpis dk"
	dadosKpisColumns = "dk.id, dk.kpi_id, dk.periodo, dk.valor_numerico, dk.observacoes, dk.status_semaforo, dk.fonte_origem, dk.registrado_por, dk.data_registro, dk.created_at, dk.updated_at"
)

type DataPointRepository interface {
	ListByPeriodo(periodo string) ([]*domain.DataPoint, error)
	ListByPeriodoPattern(pattern string) ([]*domain.DataPoint, error)
	ListByKpi(kpiID string) ([]*domain.DataPoint, error)
	GetByKpiAndPeriodo(kpiID, periodo string) (*domain.DataPoint, error)
	Insert(dp *domain.DataPoint) error
	Update(dp *domain.DataPoint) error
}

type dataPointRepository struct {
	conn *postgres.Connection
}

func NewDataPointRepository(conn *postgres.Connection) DataPointRepository {
	return &dataPointRepository{
		conn: conn,
	}
}

// ListByPeriodo retorna os registros de um período exato ("2026-T1")
func (r *dataPointRepository) ListByPeriodo(periodo string) ([]*domain.DataPoint, error) {
	query, args, err := squirrel.
		Select(dadosKpisColumns).
		From(dadosKpisTable).
		Where(squirrel.Eq{"dk.periodo": periodo}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryDataPoints(query, args...)
}

// ListByPeriodoPattern retorna os registros cujos períodos casam com um padrão
// LIKE ("2026-T%" cobre os trimestres do ano), ordenados cronologicamente
func (r *dataPointRepository) ListByPeriodoPattern(pattern string) ([]*domain.DataPoint, error) {
	query, args, err := squirrel.
		Select(dadosKpisColumns).
		From(dadosKpisTable).
		Where(squirrel.Like{"dk.periodo": pattern}).
		OrderBy("dk.periodo ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryDataPoints(query, args...)
}

// ListByKpi retorna a série histórica completa de um KPI, ordenada por período
func (r *dataPointRepository) ListByKpi(kpiID string) ([]*domain.DataPoint, error) {
	query, args, err := squirrel.
		Select(dadosKpisColumns).
		From(dadosKpisTable).
		Where(squirrel.Eq{"dk.kpi_id": kpiID}).
		OrderBy("dk.periodo ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryDataPoints(query, args...)
}

// GetByKpiAndPeriodo busca o registro único de um par (kpi, período).
// Retorna nil sem erro quando não existe.
func (r *dataPointRepository) GetByKpiAndPeriodo(kpiID, periodo string) (*domain.DataPoint, error) {
	query, args, err := squirrel.
		Select(dadosKpisColumns).
		From(dadosKpisTable).
		Where(squirrel.Eq{"dk.kpi_id": kpiID, "dk.periodo": periodo}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	dp, err := scanDataPoint(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de KPI: %w", err)
	}

	return dp, nil
}

func (r *dataPointRepository) Insert(dp *domain.DataPoint) error {
	now := time.Now()

	query, args, err := squirrel.
		Insert("dados_kpis").
		Columns("id", "kpi_id", "periodo", "valor_numerico", "observacoes", "status_semaforo", "fonte_origem", "registrado_por", "data_registro", "created_at", "updated_at").
		Values(dp.ID, dp.KpiID, dp.Periodo, dp.ValorNumerico, dp.Observacoes, dp.StatusSemaforo, dp.FonteOrigem, dp.RegistradoPor, now, now, now).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir registro de KPI: %w", err)
	}

	return nil
}

func (r *dataPointRepository) Update(dp *domain.DataPoint) error {
	query, args, err := squirrel.
		Update("dados_kpis").
		Set("valor_numerico", dp.ValorNumerico).
		Set("observacoes", dp.Observacoes).
		Set("status_semaforo", dp.StatusSemaforo).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": dp.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar registro de KPI: %w", err)
	}

	return nil
}

func (r *dataPointRepository) queryDataPoints(query string, args ...interface{}) ([]*domain.DataPoint, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	dataPoints := make([]*domain.DataPoint, 0)
	for rows.Next() {
		dp, err := scanDataPoint(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de KPI: %w", err)
		}
		dataPoints = append(dataPoints, dp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return dataPoints, nil
}

func scanDataPoint(row scannable) (*domain.DataPoint, error) {
	var dp domain.DataPoint
	var status sql.NullString

	err := row.Scan(
		&dp.ID,
		&dp.KpiID,
		&dp.Periodo,
		&dp.ValorNumerico,
		&dp.Observacoes,
		&status,
		&dp.FonteOrigem,
		&dp.RegistradoPor,
		&dp.DataRegistro,
		&dp.CreatedAt,
		&dp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if status.Valid {
		s := domain.Semaforo(status.String)
		dp.StatusSemaforo = &s
	}

	return &dp, nil
}
