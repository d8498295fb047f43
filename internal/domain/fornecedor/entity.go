package fornecedor

import "errors"

var ErrNomeEmpresaVazio = errors.New("nome da empresa não pode ser vazio")

// Fornecedor representa um prestador que emite notas contra as filiais.
// As listas são texto delimitado por ponto-e-vírgula ou vírgula; os valores
// escolhidos são copiados para o lançamento no momento da criação.
type Fornecedor struct {
	ID               int64  `json:"id"`
	NomeEmpresa      string `json:"nome_empresa"`
	ListaCNPJs       string `json:"lista_cnpjs"`
	ListaContratos   string `json:"lista_contratos"`
	ListaCentroCusto string `json:"lista_centro_custos"`

	// Padrões reutilizados ao criar um lançamento
	PadraoDescricaoServico string `json:"padrao_descricao_servico,omitempty"`
	PadraoServicoProtheus  string `json:"padrao_servico_protheus,omitempty"`
}

// NewFornecedor cria um novo fornecedor
func NewFornecedor(nomeEmpresa, listaCNPJs, listaContratos, listaCentroCusto, padraoDescricao, padraoServico string) (*Fornecedor, error) {
	if nomeEmpresa == "" {
		return nil, ErrNomeEmpresaVazio
	}

	return &Fornecedor{
		NomeEmpresa:            nomeEmpresa,
		ListaCNPJs:             listaCNPJs,
		ListaContratos:         listaContratos,
		ListaCentroCusto:       listaCentroCusto,
		PadraoDescricaoServico: padraoDescricao,
		PadraoServicoProtheus:  padraoServico,
	}, nil
}
