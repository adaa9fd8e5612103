package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"ecshop/internal/domain/model"
	repo "ecshop/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`)

// JWTの発行をusecaseから隠す約束。実装はcmd側。
type TokenIssuer interface {
	Issue(username string, email string, roles []string, now time.Time) (string, time.Time, error)
}

type SignUpInput struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"role"`
}

type SignInInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserInfoResponse struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	JwtToken string   `json:"jwtToken,omitempty"`
}

type SignInResult struct {
	User      UserInfoResponse
	Token     string
	ExpiresAt time.Time
}

type AuthUsecase struct {
	userRepo repo.UserRepository
	roleRepo repo.RoleRepository
	issuer   TokenIssuer
}

// DI
func NewAuthUsecase(userRepo repo.UserRepository, roleRepo repo.RoleRepository, issuer TokenIssuer) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		issuer:   issuer,
	}
}

func validateSignUpField(fieldName string, value string, minLength int, maxLength int) error {
	if strings.TrimSpace(value) == "" {
		return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("The %s cannot be empty!", fieldName))
	}
	if len(value) < minLength {
		return NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("The %s must be at least %d characters long!", fieldName, minLength))
	}
	if len(value) > maxLength {
		return NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("The %s must have a maximum of %d characters!", fieldName, maxLength))
	}
	return nil
}

func validateSignUpInput(in SignUpInput) error {
	if err := validateSignUpField("username", in.Username, 3, 20); err != nil {
		return err
	}
	if err := validateSignUpField("email", in.Email, 6, 50); err != nil {
		return err
	}
	if !emailPattern.MatchString(in.Email) {
		return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid email format: %s", in.Email))
	}
	if err := validateSignUpField("password", in.Password, 6, 40); err != nil {
		return err
	}
	//roles未指定はuser扱い。明示的な空集合だけ弾く
	if in.Roles != nil && len(in.Roles) == 0 {
		return NewHTTPError(http.StatusBadRequest, "The role cannot be empty!")
	}
	return nil
}

// 会員登録。username/email重複は409。
func (u *AuthUsecase) SignUp(ctx context.Context, in SignUpInput) (string, error) {
	if err := validateSignUpInput(in); err != nil {
		return "", err
	}

	taken, err := u.userRepo.ExistsByUserName(ctx, in.Username)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return "", NewHTTPError(http.StatusConflict, "Error: Username is already taken!")
	}

	used, err := u.userRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if used {
		return "", NewHTTPError(http.StatusConflict, "Error: Email is already in use!")
	}

	roles, err := u.resolveRoles(ctx, in.Roles)
	if err != nil {
		return "", err
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := &model.User{
		UserName: in.Username,
		Email:    in.Email,
		Password: string(hash),
		Roles:    roles,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return "", NewHTTPError(http.StatusConflict, "Error: user could not be registered")
	}

	return "User registered successfully!", nil
}

// ロール名はadmin/seller/それ以外userの固定マッピング
func (u *AuthUsecase) resolveRoles(ctx context.Context, roleNames []string) ([]model.Role, error) {
	if len(roleNames) == 0 {
		roleNames = []string{"user"}
	}

	seen := map[model.RoleName]bool{}
	roles := make([]model.Role, 0, len(roleNames))

	for _, name := range roleNames {
		var roleName model.RoleName
		switch strings.ToLower(name) {
		case "admin":
			roleName = model.RoleAdmin
		case "seller":
			roleName = model.RoleSeller
		default:
			roleName = model.RoleUser
		}

		if seen[roleName] {
			continue
		}
		seen[roleName] = true

		role, err := u.roleRepo.FindByName(ctx, roleName)
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Error: Role %s is not found.", roleName))
		}
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		roles = append(roles, role)
	}

	return roles, nil
}

// ログイン。資格情報が合わなければ401で、理由は区別しない。
func (u *AuthUsecase) SignIn(ctx context.Context, in SignInInput) (SignInResult, error) {
	user, err := u.userRepo.FindByUserName(ctx, in.Username)
	if errors.Is(err, repo.ErrNotFound) {
		return SignInResult{}, NewHTTPError(http.StatusUnauthorized, "Bad credentials")
	}
	if err != nil {
		return SignInResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return SignInResult{}, NewHTTPError(http.StatusUnauthorized, "Bad credentials")
	}

	roles := roleStrings(user.Roles)

	token, expiresAt, err := u.issuer.Issue(user.UserName, user.Email, roles, time.Now())
	if err != nil {
		return SignInResult{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return SignInResult{
		User: UserInfoResponse{
			ID:       user.ID,
			Username: user.UserName,
			Roles:    roles,
			JwtToken: token,
		},
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ログイン中ユーザーの情報
func (u *AuthUsecase) GetUserInfo(ctx context.Context, username string) (UserInfoResponse, error) {
	user, err := u.userRepo.FindByUserName(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return UserInfoResponse{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("User not found with username: %s", username))
	}
	if err != nil {
		return UserInfoResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return UserInfoResponse{
		ID:       user.ID,
		Username: user.UserName,
		Roles:    roleStrings(user.Roles),
	}, nil
}

func roleStrings(roles []model.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r.RoleName))
	}
	return out
}
