package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
	"github.com/vcampos/marketing-hub-api/pkg/apiErrors"
)

// RequireRole cria um middleware que restringe o acesso a usuários cujo papel
// alcança o nível mínimo exigido, segundo a tabela do avaliador. Papéis
// desconhecidos nunca passam.
func RequireRole(evaluator *authorizing.Evaluator, minimum domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !evaluator.HasPermission(userClaims.UserRole, minimum) {
				logrus.Warningf("Acesso negado para usuário ID=%s, Role=%s", userClaims.UserID, userClaims.UserRole)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly é um middleware que permite acesso apenas para administradores
func AdminOnly(evaluator *authorizing.Evaluator) func(http.Handler) http.Handler {
	return RequireRole(evaluator, domain.RoleAdmin)
}

// Editors permite acesso a quem pode criar e editar conteúdo
func Editors(evaluator *authorizing.Evaluator) func(http.Handler) http.Handler {
	return RequireRole(evaluator, domain.RoleEditor)
}

// Analysts permite acesso a quem pode consultar métricas e relatórios
func Analysts(evaluator *authorizing.Evaluator) func(http.Handler) http.Handler {
	return RequireRole(evaluator, domain.RoleAnalyst)
}

// AllRoles permite acesso a qualquer usuário autenticado com papel conhecido
func AllRoles(evaluator *authorizing.Evaluator) func(http.Handler) http.Handler {
	return RequireRole(evaluator, domain.RoleViewer)
}
