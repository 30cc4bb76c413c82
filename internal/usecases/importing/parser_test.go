package importing

import (
	"testing"

	"github.com/institutoins/kpi-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseRows(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantErr  bool
		validate func(t *testing.T, rows []domain.ImportRow)
	}{
		{
			name: "Arquivo separado por ponto e vírgula",
			data: "codigo_kpi;periodo;valor_numerico;observacao\nA1;2026-T1;10,5;meta parcial\nB1;2026-T1;200;\n",
			validate: func(t *testing.T, rows []domain.ImportRow) {
				assert.Len(t, rows, 2)
				assert.Equal(t, "A1", rows[0].CodigoKpi)
				assert.Equal(t, "2026-T1", rows[0].Periodo)
				assert.Equal(t, "10,5", rows[0].ValorNumerico)
				assert.Equal(t, "meta parcial", *rows[0].Observacao)
				assert.Nil(t, rows[1].Observacao)
			},
		},
		{
			name: "Arquivo separado por vírgula",
			data: "codigo_kpi,periodo,valor_numerico\nA1,2026-T1,160\n",
			validate: func(t *testing.T, rows []domain.ImportRow) {
				assert.Len(t, rows, 1)
				assert.Equal(t, "160", rows[0].ValorNumerico)
			},
		},
		{
			name: "BOM UTF-8 no início do arquivo é descartado",
			data: "\xef\xbb\xbfcodigo_kpi;periodo;valor_numerico\nA1;2026-T1;160\n",
			validate: func(t *testing.T, rows []domain.ImportRow) {
				assert.Len(t, rows, 1)
				assert.Equal(t, "A1", rows[0].CodigoKpi)
			},
		},
		{
			name: "Cabeçalho com maiúsculas e espaços é normalizado",
			data: "Codigo_KPI; Periodo ;Valor_Numerico\nA1;2026-T1;160\n",
			validate: func(t *testing.T, rows []domain.ImportRow) {
				assert.Len(t, rows, 1)
				assert.Equal(t, "A1", rows[0].CodigoKpi)
				assert.Equal(t, "2026-T1", rows[0].Periodo)
			},
		},
		{
			name: "Colunas desconhecidas são ignoradas",
			data: "codigo_kpi;responsavel;periodo;valor_numerico\nA1;Maria;2026-T1;160\n",
			validate: func(t *testing.T, rows []domain.ImportRow) {
				assert.Len(t, rows, 1)
				assert.Equal(t, "A1", rows[0].CodigoKpi)
				assert.Equal(t, "160", rows[0].ValorNumerico)
			},
		},
		{
			name: "Linha com menos campos que o cabeçalho não quebra o parse",
			data: "codigo_kpi;periodo;valor_numerico\nA1;2026-T1\n",
			validate: func(t *testing.T, rows []domain.ImportRow) {
				assert.Len(t, rows, 1)
				assert.Equal(t, "A1", rows[0].CodigoKpi)
				assert.Empty(t, rows[0].ValorNumerico)
			},
		},
		{
			name:    "Cabeçalho sem a coluna de código é rejeitado",
			data:    "indicador;periodo;valor\nA1;2026-T1;160\n",
			wantErr: true,
		},
		{
			name: "Arquivo só com cabeçalho produz zero linhas",
			data: "codigo_kpi;periodo;valor_numerico\n",
			validate: func(t *testing.T, rows []domain.ImportRow) {
				assert.Empty(t, rows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseRows([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			tt.validate(t, rows)
		})
	}
}

func TestDetectSeparator(t *testing.T) {
	assert.Equal(t, ';', detectSeparator([]byte("a;b;c\n1;2;3")))
	assert.Equal(t, ',', detectSeparator([]byte("a,b,c\n1,2,3")))
	// Empate fica com a vírgula, o separador canônico do formato
	assert.Equal(t, ',', detectSeparator([]byte("a\n")))
}
