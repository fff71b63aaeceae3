package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository/mocks"
	"github.com/vcampos/marketing-hub-api/internal/config"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return string(hash)
}

func newService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, authorizing.NewEvaluator(nil), &config.Config{SecretKey: "segredo-de-teste"})

	return service, mockUserRepo
}

func TestService_LoginUser(t *testing.T) {
	passwordHash := hashPassword(t, "Senha@Forte1")

	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(mockUserRepo *mocks.MockUserRepository)
		expectedErr error
		validate    func(t *testing.T, token string)
	}{
		{
			name:     "Login válido retorna token assinado com o papel normalizado",
			email:    "Ana.Silva@Empresa.com ",
			password: "Senha@Forte1",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				// O email é normalizado antes da consulta
				mockUserRepo.EXPECT().
					GetUserByEmail("ana.silva@empresa.com").
					Return(&domain.User{
						ID:           "user-1",
						Name:         "Ana",
						Email:        "ana.silva@empresa.com",
						Active:       true,
						Role:         domain.Role("papel-desconhecido"),
						PasswordHash: passwordHash,
					}, nil)
			},
			validate: func(t *testing.T, token string) {
				assert.NotEmpty(t, token)

				service, _ := newService(t)
				claims, err := service.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, "user-1", claims.UserID)
				assert.Equal(t, domain.DefaultRole, claims.UserRole)
			},
		},
		{
			name:        "Email vazio é rejeitado antes de consultar o banco",
			email:       "",
			password:    "Senha@Forte1",
			setup:       func(mockUserRepo *mocks.MockUserRepository) {},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:     "Usuário desconhecido não faz login",
			email:    "ninguem@empresa.com",
			password: "Senha@Forte1",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserByEmail("ninguem@empresa.com").
					Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada não faz login mesmo com a senha correta",
			email:    "ana.silva@empresa.com",
			password: "Senha@Forte1",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserByEmail("ana.silva@empresa.com").
					Return(&domain.User{
						ID:           "user-1",
						Active:       false,
						PasswordHash: passwordHash,
					}, nil)
			},
			expectedErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta é rejeitada",
			email:    "ana.silva@empresa.com",
			password: "senha-errada",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserByEmail("ana.silva@empresa.com").
					Return(&domain.User{
						ID:           "user-1",
						Active:       true,
						PasswordHash: passwordHash,
					}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockUserRepo := newService(t)
			tt.setup(mockUserRepo)

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, token)
			}
		})
	}
}

func TestService_CreateUser(t *testing.T) {
	tests := []struct {
		name        string
		user        *domain.User
		setup       func(mockUserRepo *mocks.MockUserRepository)
		expectedErr error
		validate    func(t *testing.T, result *domain.User)
	}{
		{
			name: "Novo usuário entra inativo, com senha em hash e papel padrão",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "Silva",
				Email:        "Ana.Silva@Empresa.com",
				PasswordHash: "Senha@Forte1",
			},
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserByEmail("ana.silva@empresa.com").
					Return(nil, nil)

				mockUserRepo.EXPECT().
					CreateUser(gomock.Any()).
					DoAndReturn(func(u *domain.User) (*domain.User, error) {
						u.ID = "user-1"
						return u, nil
					})
			},
			validate: func(t *testing.T, result *domain.User) {
				assert.Equal(t, "ana.silva@empresa.com", result.Email)
				assert.Equal(t, domain.DefaultRole, result.Role)
				assert.False(t, result.Active)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.PasswordHash), []byte("Senha@Forte1")))
			},
		},
		{
			name: "Dados obrigatórios ausentes são rejeitados",
			user: &domain.User{
				Name:  "Ana",
				Email: "ana@empresa.com",
			},
			setup:       func(mockUserRepo *mocks.MockUserRepository) {},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name: "Email já cadastrado é rejeitado",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "Silva",
				Email:        "ana.silva@empresa.com",
				PasswordHash: "Senha@Forte1",
			},
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserByEmail("ana.silva@empresa.com").
					Return(&domain.User{ID: "user-1"}, nil)
			},
			expectedErr: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockUserRepo := newService(t)
			tt.setup(mockUserRepo)

			result, err := service.CreateUser(tt.user)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestService_ResolveUserRole(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mockUserRepo *mocks.MockUserRepository)
		expected domain.Role
	}{
		{
			name: "Papel conhecido é retornado como está",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserRole("user-1").
					Return(domain.RoleEditor, nil)
			},
			expected: domain.RoleEditor,
		},
		{
			name: "Falha na consulta degrada para o papel padrão",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserRole("user-1").
					Return(domain.Role(""), errors.New("erro de banco"))
			},
			expected: domain.DefaultRole,
		},
		{
			name: "Papel desconhecido degrada para o papel padrão",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserRole("user-1").
					Return(domain.Role("super-hacker"), nil)
			},
			expected: domain.DefaultRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockUserRepo := newService(t)
			tt.setup(mockUserRepo)

			assert.Equal(t, tt.expected, service.ResolveUserRole("user-1"))
		})
	}
}

func TestService_GenerateStrongPassword(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(mockUserRepo *mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name: "Administrador redefine a senha de outro usuário",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserByID("admin-1").
					Return(&domain.User{ID: "admin-1", Role: domain.RoleAdmin}, nil)

				mockUserRepo.EXPECT().
					GetUserByID("user-1").
					Return(&domain.User{ID: "user-1", Role: domain.RoleViewer}, nil)

				mockUserRepo.EXPECT().
					UpdateUser(gomock.Any()).
					DoAndReturn(func(u *domain.User) error {
						assert.NotEmpty(t, u.PasswordHash)
						return nil
					})
			},
		},
		{
			name: "Editor não pode redefinir a senha de outro usuário",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserByID("admin-1").
					Return(&domain.User{ID: "admin-1", Role: domain.RoleEditor}, nil)
			},
			expectedErr: ErrNoAdminPrivileges,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockUserRepo := newService(t)
			tt.setup(mockUserRepo)

			password, err := service.GenerateStrongPassword("admin-1", "user-1")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.GreaterOrEqual(t, len(password), 12)
			assert.NoError(t, service.ValidatePasswordStrength(password))
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	currentHash := hashPassword(t, "Senha@Atual1")

	tests := []struct {
		name        string
		current     string
		newPassword string
		setup       func(mockUserRepo *mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:        "Troca válida grava o novo hash",
			current:     "Senha@Atual1",
			newPassword: "Senha@Nova22",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserByID("user-1").
					Return(&domain.User{ID: "user-1", PasswordHash: currentHash}, nil)

				mockUserRepo.EXPECT().
					UpdateUser(gomock.Any()).
					DoAndReturn(func(u *domain.User) error {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Senha@Nova22")))
						return nil
					})
			},
		},
		{
			name:        "Senha atual incorreta é rejeitada",
			current:     "senha-errada",
			newPassword: "Senha@Nova22",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserByID("user-1").
					Return(&domain.User{ID: "user-1", PasswordHash: currentHash}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:        "Nova senha igual à atual é rejeitada",
			current:     "Senha@Atual1",
			newPassword: "Senha@Atual1",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserByID("user-1").
					Return(&domain.User{ID: "user-1", PasswordHash: currentHash}, nil)
			},
			expectedErr: ErrSamePassword,
		},
		{
			name:        "Nova senha fraca é rejeitada",
			current:     "Senha@Atual1",
			newPassword: "fraca",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserByID("user-1").
					Return(&domain.User{ID: "user-1", PasswordHash: currentHash}, nil)
			},
			expectedErr: ErrWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockUserRepo := newService(t)
			tt.setup(mockUserRepo)

			err := service.ChangePassword("user-1", tt.current, tt.newPassword)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
