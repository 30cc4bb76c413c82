package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/institutoins/kpi-manager-api/infrastructure/database/postgres"
	"github.com/institutoins/kpi-manager-api/internal/domain"
)

const (
	configKpisTable   = "config_kpis ck"
	configKpisColumns = "ck.id, ck.codigo, ck.nome, ck.tipo, ck.perspectiva, ck.area, ck.projeto, ck.unidade, ck.meta_valor, ck.faixa_verde, ck.faixa_amarela, ck.alimenta_kpi, ck.fonte, ck.frequencia, ck.ativo, ck.created_at"
)

type KpiRepository interface {
	ListByTipo(tipo string) ([]*domain.KpiDefinition, error)
	GetByID(id string) (*domain.KpiDefinition, error)
	ListAtivos() ([]*domain.KpiDefinition, error)
}

type kpiRepository struct {
	conn *postgres.Connection
}

func NewKpiRepository(conn *postgres.Connection) KpiRepository {
	return &kpiRepository{
		conn: conn,
	}
}

// ListByTipo retorna as definições de KPI de um tipo (estrategico/operacional),
// ordenadas pelo código de negócio
func (r *kpiRepository) ListByTipo(tipo string) ([]*domain.KpiDefinition, error) {
	query, args, err := squirrel.
		Select(configKpisColumns).
		From(configKpisTable).
		Where(squirrel.Eq{"ck.tipo": tipo, "ck.ativo": true}).
		OrderBy("ck.codigo ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryKpis(query, args...)
}

// ListAtivos retorna todas as definições ativas, de qualquer tipo
func (r *kpiRepository) ListAtivos() ([]*domain.KpiDefinition, error) {
	query, args, err := squirrel.
		Select(configKpisColumns).
		From(configKpisTable).
		Where(squirrel.Eq{"ck.ativo": true}).
		OrderBy("ck.codigo ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryKpis(query, args...)
}

func (r *kpiRepository) GetByID(id string) (*domain.KpiDefinition, error) {
	query, args, err := squirrel.
		Select(configKpisColumns).
		From(configKpisTable).
		Where(squirrel.Eq{"ck.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	kpi, err := scanKpi(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear definição de KPI: %w", err)
	}

	return kpi, nil
}

func (r *kpiRepository) queryKpis(query string, args ...interface{}) ([]*domain.KpiDefinition, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	kpis := make([]*domain.KpiDefinition, 0)
	for rows.Next() {
		kpi, err := scanKpi(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear definição de KPI: %w", err)
		}
		kpis = append(kpis, kpi)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return kpis, nil
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanKpi(row scannable) (*domain.KpiDefinition, error) {
	var kpi domain.KpiDefinition
	var perspectiva sql.NullString

	err := row.Scan(
		&kpi.ID,
		&kpi.Codigo,
		&kpi.Nome,
		&kpi.Tipo,
		&perspectiva,
		&kpi.Area,
		&kpi.Projeto,
		&kpi.Unidade,
		&kpi.MetaValor,
		&kpi.FaixaVerde,
		&kpi.FaixaAmarela,
		&kpi.AlimentaKpi,
		&kpi.Fonte,
		&kpi.Frequencia,
		&kpi.Ativo,
		&kpi.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if perspectiva.Valid {
		kpi.Perspectiva = perspectiva.String
	}

	return &kpi, nil
}
