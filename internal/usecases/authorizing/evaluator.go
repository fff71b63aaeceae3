package authorizing

import (
	"github.com/vcampos/marketing-hub-api/internal/domain"
)

// RankTable mapeia cada papel para um inteiro comparável usado nas
// verificações de permissão. Papéis ausentes da tabela têm rank 0 e nunca
// recebem permissão.
type RankTable map[domain.Role]int

// DefaultRankTable retorna a tabela de hierarquia canônica. Uma revisão
// antiga do produto usava uma tabela de três níveis (admin=3,
// editor=analyst=2, viewer=1); a tabela abaixo é a revisão vigente e única
// fonte de verdade.
func DefaultRankTable() RankTable {
	return RankTable{
		domain.RoleAdmin:               4,
		domain.RoleGerenteMarketing:    4,
		domain.RoleEditor:              3,
		domain.RoleAnalistaMarketing:   3,
		domain.RoleAnalyst:             2,
		domain.RoleAssistenteMarketing: 2,
		domain.RoleViewer:              1,
	}
}

// Evaluator responde consultas de autorização como funções puras sobre o
// papel do usuário e a propriedade do item. Não realiza I/O e nunca retorna
// erro: entradas desconhecidas resultam em negação.
type Evaluator struct {
	ranks RankTable
}

// NewEvaluator cria um avaliador com a tabela de hierarquia informada.
// Tabela nula usa a tabela canônica.
func NewEvaluator(ranks RankTable) *Evaluator {
	if ranks == nil {
		ranks = DefaultRankTable()
	}

	return &Evaluator{ranks: ranks}
}

// Rank retorna o nível hierárquico do papel. Papel desconhecido ou vazio
// tem rank 0.
func (e *Evaluator) Rank(role domain.Role) int {
	return e.ranks[role]
}

// HasPermission retorna verdadeiro se o papel do ator é igual ou superior
// ao papel exigido na hierarquia. Ator sem papel resolvido nunca recebe
// permissão.
func (e *Evaluator) HasPermission(actor, required domain.Role) bool {
	actorRank := e.ranks[actor]
	if actorRank == 0 {
		return false
	}

	return actorRank >= e.ranks[required]
}

// CanDelete decide se o ator pode excluir um item pertencente a
// itemOwnerID. Administradores e gerentes de marketing excluem qualquer
// item; os demais papéis apenas os próprios. Papel desconhecido nunca
// recebe a exceção de administrador e cai na verificação de propriedade.
func (e *Evaluator) CanDelete(actor domain.Role, itemOwnerID, actingUserID string) bool {
	if actor == "" {
		return false
	}

	if actor == domain.RoleAdmin || actor == domain.RoleGerenteMarketing {
		return true
	}

	return itemOwnerID == actingUserID
}

// ResolveRole normaliza o papel vindo do banco: vazio ou desconhecido vira
// o papel padrão de menor privilégio. É o ponto único de recuperação para
// falhas de consulta de papel (fail-closed).
func (e *Evaluator) ResolveRole(role domain.Role) domain.Role {
	if _, known := e.ranks[role]; !known {
		return domain.DefaultRole
	}

	return role
}
