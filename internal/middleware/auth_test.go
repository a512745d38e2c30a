package middleware

import (
  "context"
  "errors"
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/mindnest/mindnest-backend/internal/platform/logger"
  "github.com/mindnest/mindnest-backend/internal/requestdata"
  "github.com/mindnest/mindnest-backend/internal/types"
)

type fakeAuthService struct {
  userID uuid.UUID
  role   string
  err    error
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, email, password string) (string, *types.User, error) {
  return "", nil, errors.New("not implemented")
}

func (f *fakeAuthService) LoginUser(ctx context.Context, email, password string) (string, *types.User, error) {
  return "", nil, errors.New("not implemented")
}

func (f *fakeAuthService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  if f.err != nil {
    return ctx, f.err
  }
  return requestdata.WithRequestData(ctx, &requestdata.RequestData{
    UserID: f.userID,
    Role:   f.role,
  }), nil
}

func newTestRouter(t *testing.T, svc *fakeAuthService, gates ...func(*AuthMiddleware) gin.HandlerFunc) *gin.Engine {
  t.Helper()
  gin.SetMode(gin.TestMode)
  log, err := logger.New("test")
  if err != nil {
    t.Fatalf("logger.New: %v", err)
  }
  am := NewAuthMiddleware(log, svc)

  chain := []gin.HandlerFunc{am.RequireAuth()}
  for _, gate := range gates {
    chain = append(chain, gate(am))
  }
  chain = append(chain, func(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"ok": true})
  })

  r := gin.New()
  r.GET("/protected", chain...)
  return r
}

func doRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
  req := httptest.NewRequest(http.MethodGet, "/protected", nil)
  if header != "" {
    req.Header.Set("Authorization", header)
  }
  w := httptest.NewRecorder()
  r.ServeHTTP(w, req)
  return w
}

func TestRequireAuthAdmitsValidToken(t *testing.T) {
  svc := &fakeAuthService{userID: uuid.New(), role: types.RoleUser}
  r := newTestRouter(t, svc)

  w := doRequest(r, "Bearer good-token")
  if w.Code != http.StatusOK {
    t.Fatalf("status: want=200 got=%d body=%s", w.Code, w.Body.String())
  }
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
  svc := &fakeAuthService{userID: uuid.New(), role: types.RoleUser}
  r := newTestRouter(t, svc)

  w := doRequest(r, "")
  if w.Code != http.StatusUnauthorized {
    t.Fatalf("status: want=401 got=%d", w.Code)
  }
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
  svc := &fakeAuthService{err: errors.New("bad token")}
  r := newTestRouter(t, svc)

  w := doRequest(r, "Bearer expired")
  if w.Code != http.StatusUnauthorized {
    t.Fatalf("status: want=401 got=%d", w.Code)
  }
}

func TestRequireStaffRoleMatrix(t *testing.T) {
  cases := []struct {
    role string
    want int
  }{
    {types.RoleAdmin, http.StatusOK},
    {types.RoleStaff, http.StatusOK},
    {types.RoleUser, http.StatusForbidden},
  }
  for _, tc := range cases {
    svc := &fakeAuthService{userID: uuid.New(), role: tc.role}
    r := newTestRouter(t, svc, (*AuthMiddleware).RequireStaff)

    w := doRequest(r, "Bearer token")
    if w.Code != tc.want {
      t.Fatalf("role=%s status: want=%d got=%d", tc.role, tc.want, w.Code)
    }
  }
}

func TestRequireAdminRejectsStaff(t *testing.T) {
  svc := &fakeAuthService{userID: uuid.New(), role: types.RoleStaff}
  r := newTestRouter(t, svc, (*AuthMiddleware).RequireAdmin)

  w := doRequest(r, "Bearer token")
  if w.Code != http.StatusForbidden {
    t.Fatalf("status: want=403 got=%d", w.Code)
  }
}
