package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/service"
	mockusecase "fieldservice/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakePrompter struct {
	t           *testing.T
	credentials func(*entity.Credentials)
	closure     func(*ClosureAnswers, []string)
}

func (p *fakePrompter) Credentials(credentials *entity.Credentials) error {
	if p.credentials == nil {
		p.t.Fatalf("unexpected credentials prompt")
	}
	p.credentials(credentials)

	return nil
}

func (p *fakePrompter) Closure(answers *ClosureAnswers, justifications []string) error {
	if p.closure == nil {
		p.t.Fatalf("unexpected closure prompt")
	}
	p.closure(answers, justifications)

	return nil
}

type cliFixtures struct {
	app      *App
	prompter *fakePrompter
	auth     *mockusecase.MockAuthUsecase
	orders   *mockusecase.MockOrderUsecase
	users    *mockusecase.MockUserUsecase
	reports  *mockusecase.MockReportUsecase
	scanner  *mockusecase.MockQRCaptureUsecase
	workflow *mockusecase.MockWorkflowUsecase
}

func createTestCLI(t *testing.T) cliFixtures {
	fx := cliFixtures{
		prompter: &fakePrompter{t: t},
		auth:     mockusecase.NewMockAuthUsecase(t),
		orders:   mockusecase.NewMockOrderUsecase(t),
		users:    mockusecase.NewMockUserUsecase(t),
		reports:  mockusecase.NewMockReportUsecase(t),
		scanner:  mockusecase.NewMockQRCaptureUsecase(t),
		workflow: mockusecase.NewMockWorkflowUsecase(t),
	}
	fx.app = &App{
		Auth:     fx.auth,
		Orders:   fx.orders,
		Users:    fx.users,
		Reports:  fx.reports,
		Scanner:  fx.scanner,
		Workflow: fx.workflow,
		Prompter: fx.prompter,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return fx
}

func (fx cliFixtures) run(args ...string) (string, string, error) {
	root, r := newRootCommand(func(context.Context) (*App, error) {
		return fx.app, nil
	})
	r.now = func() time.Time { return testNow }

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	if closeErr := r.close(); err == nil {
		err = closeErr
	}

	return out.String(), errOut.String(), err
}

func (fx cliFixtures) loggedInAs(role entity.Role) {
	fx.auth.EXPECT().Current(mock.Anything).Return(&entity.Session{AccessToken: "acc", Role: role}, nil)
}

func (fx cliFixtures) readyView(justifications ...string) {
	fx.workflow.EXPECT().OpenView(mock.Anything, "42").
		Return(&entity.OrderView{ID: "v1", OrderID: "42"}, nil)
	fx.workflow.EXPECT().ValidateAccess(mock.Anything, "v1", "tok").
		Return(&entity.OrderView{
			ID:      "v1",
			OrderID: "42",
			Access: entity.AccessState{
				Phase:   entity.AccessReady,
				OrderID: "42",
				Order:   &entity.Order{ID: 42, Status: entity.OrderStatusInUse, TechnicianName: "Ana"},
			},
			Wizard: entity.WizardView{State: entity.WizardChoosing, Justifications: justifications},
		}, nil)
	fx.expectTeardown()
}

// expectTeardown expects the view to be closed only after its start notification.
func (fx cliFixtures) expectTeardown() {
	await := fx.workflow.EXPECT().AwaitStart(mock.Anything, "v1").Return(nil).Once()
	fx.workflow.EXPECT().CloseView(mock.Anything, "v1").Return(nil).Once().NotBefore(await)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func TestHelp_DoesNotLoadApp(t *testing.T) {
	root, _ := newRootCommand(func(context.Context) (*App, error) {
		t.Fatal("loader called for --help")

		return nil, nil
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "fieldctl")
}

func TestCommands_Registered(t *testing.T) {
	root, _ := newRootCommand(nil)

	want := []string{"login", "logout", "whoami", "refresh", "scan", "open", "close",
		"orders", "order", "qr", "stats", "pdf", "audits", "users"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	for _, sub := range [][]string{{"orders", "create"}, {"users", "list"}, {"users", "create"},
		{"users", "activate"}, {"users", "deactivate"}, {"users", "role"}} {
		cmd, _, err := root.Find(sub)
		require.NoError(t, err)
		assert.Equal(t, sub[1], cmd.Name())
	}
}

func TestLogin(t *testing.T) {
	t.Run("with flags", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.auth.EXPECT().Login(mock.Anything, entity.Credentials{Username: "ana", Password: "secret"}).
			Return(&entity.Session{AccessToken: "acc", Role: entity.RoleTechnician}, nil)

		out, _, err := fx.run("login", "-u", "ana", "-p", "secret")

		require.NoError(t, err)
		assert.Equal(t, "Logged in as ana (TECNICO)\n", out)
		assert.NotContains(t, out, "acc")
	})

	t.Run("prompts for the missing password", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.prompter.credentials = func(c *entity.Credentials) {
			assert.Equal(t, "ana", c.Username)
			c.Password = "secret"
		}
		fx.auth.EXPECT().Login(mock.Anything, entity.Credentials{Username: "ana", Password: "secret"}).
			Return(&entity.Session{AccessToken: "acc", Role: entity.RoleAdmin}, nil)

		_, _, err := fx.run("login", "--username", "ana")

		require.NoError(t, err)
	})

	t.Run("server rejection is returned", func(t *testing.T) {
		fx := createTestCLI(t)
		rejected := domainerrors.NewUpstreamError(401, "No active account found with the given credentials", nil)
		fx.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, rejected)

		_, _, err := fx.run("login", "-u", "ana", "-p", "bad")

		require.Error(t, err)
		assert.Contains(t, ErrorMessage(err), "No active account")
	})
}

func TestWhoami(t *testing.T) {
	fx := createTestCLI(t)
	expires := testNow.Add(5 * time.Minute)
	fx.auth.EXPECT().Current(mock.Anything).
		Return(&entity.Session{AccessToken: "acc", Role: entity.RoleAdmin, AccessExpiresAt: &expires}, nil)

	out, _, err := fx.run("whoami")

	require.NoError(t, err)
	assert.Contains(t, out, "ADMIN")
	assert.Contains(t, out, "in 5m0s")
}

func TestGuards(t *testing.T) {
	t.Run("technician cannot read stats", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.loggedInAs(entity.RoleTechnician)

		_, _, err := fx.run("stats")

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("expired session", func(t *testing.T) {
		fx := createTestCLI(t)
		expired := testNow.Add(-time.Minute)
		fx.auth.EXPECT().Current(mock.Anything).
			Return(&entity.Session{AccessToken: "acc", Role: entity.RoleAdmin, AccessExpiresAt: &expired}, nil)

		_, _, err := fx.run("orders")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("no session", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.auth.EXPECT().Current(mock.Anything).Return(nil, domainerrors.ErrUnauthenticated)

		_, _, err := fx.run("users", "list")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}

func TestOrders(t *testing.T) {
	fx := createTestCLI(t)
	fx.loggedInAs(entity.RoleTechnician)
	fx.orders.EXPECT().ListOrders(mock.Anything, entity.OrderFilter{Status: entity.OrderStatusPending}).
		Return([]*entity.Order{
			{ID: 7, TechnicianName: "Ana", Status: entity.OrderStatusPending, CreatedAt: testNow},
		}, nil)

	out, _, err := fx.run("orders", "--status", "pending")

	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "no expiry")
}

func TestCreateOrder(t *testing.T) {
	fx := createTestCLI(t)
	fx.loggedInAs(entity.RoleAdmin)
	fx.orders.EXPECT().CreateOrder(mock.Anything, entity.NewOrder{TechnicianID: 3, TechnicianName: "Ana", Hours: 1}).
		Return(&entity.Order{ID: 9, TechnicianName: "Ana"}, nil)

	out, _, err := fx.run("orders", "create", "--technician-id", "3", "--technician-name", "Ana")

	require.NoError(t, err)
	assert.Equal(t, "Created order 9 for Ana\n", out)
}

func TestStats(t *testing.T) {
	fx := createTestCLI(t)
	fx.loggedInAs(entity.RoleAdmin)
	fx.orders.EXPECT().Stats(mock.Anything).Return(&entity.Stats{
		TotalOrders:    10,
		TotalEvidences: 3,
		ByStatus:       map[string]int{"completed": 7, "failed": 3},
		ByTechnician:   map[string]int{"Ana": 5, "Luis": 5},
	}, nil)

	out, _, err := fx.run("stats")

	require.NoError(t, err)
	assert.Contains(t, out, "Total orders:    10")
	assert.Contains(t, out, "Total evidences: 3")
	for _, key := range []string{"completed", "failed", "Ana", "Luis"} {
		assert.Contains(t, out, key)
	}
	assert.Equal(t, []string{"10", "10"}, tableTotals(out))
	assert.NotContains(t, out, "warning")
}

func TestRenderStats_Mismatch(t *testing.T) {
	var out bytes.Buffer

	renderStats(&out, &entity.Stats{
		TotalOrders:  4,
		ByStatus:     map[string]int{"pending": 3},
		ByTechnician: map[string]int{"Ana": 3},
	})

	assert.Equal(t, []string{"3", "3"}, tableTotals(out.String()))
	assert.Contains(t, out.String(), "warning: status counts add up to 3, not 4")
}

var totalRow = regexp.MustCompile(`Total\s*│\s*(\d+)`)

func tableTotals(out string) []string {
	var totals []string
	for _, m := range totalRow.FindAllStringSubmatch(out, -1) {
		totals = append(totals, m[1])
	}

	return totals
}

func TestClose(t *testing.T) {
	t.Run("failed with flags", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.readyView("absence_of_resident")
		photo := writeFile(t, "door.jpg", []byte("jpeg"))

		fx.workflow.EXPECT().Choose(mock.Anything, "v1", entity.OutcomeFailed).
			Return(&entity.OrderView{ID: "v1"}, nil)
		fx.workflow.EXPECT().Submit(mock.Anything, "v1", mock.MatchedBy(func(in entity.ClosureInput) bool {
			return in.Justification == "absence_of_resident" &&
				in.Notes != nil && *in.Notes == "nobody home" &&
				in.Photo != nil && in.Photo.Filename == "door.jpg" &&
				string(in.Photo.Data) == "jpeg" &&
				in.Photo.ContentType == "image/jpeg"
		})).Return(&entity.OrderView{ID: "v1", Wizard: entity.WizardView{
			State:   entity.WizardChoosing,
			Message: "Orden cerrada como fallida",
		}}, nil)

		out, _, err := fx.run("close", "42", "--jwt", "tok", "--outcome", "failed",
			"--justification", "absence_of_resident", "--photo", photo, "--notes", "nobody home")

		require.NoError(t, err)
		assert.Equal(t, "Orden cerrada como fallida\n", out)
	})

	t.Run("interactive success", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.readyView("absence_of_resident", "minor_present")
		signed := writeFile(t, "signed.pdf", []byte("%PDF"))
		id := writeFile(t, "id.png", []byte("png"))

		fx.prompter.closure = func(a *ClosureAnswers, justifications []string) {
			assert.Equal(t, []string{"absence_of_resident", "minor_present"}, justifications)
			assert.True(t, a.TitularPresent)
			a.Outcome = string(entity.OutcomeSucceeded)
			a.TitularPresent = false
			a.SignedDoc = signed
			a.IDDoc = id
		}
		fx.workflow.EXPECT().Choose(mock.Anything, "v1", entity.OutcomeSucceeded).
			Return(&entity.OrderView{ID: "v1"}, nil)
		fx.workflow.EXPECT().Submit(mock.Anything, "v1", mock.MatchedBy(func(in entity.ClosureInput) bool {
			return in.TitularPresent != nil && !*in.TitularPresent &&
				in.SignedDoc.Filename == "signed.pdf" &&
				in.IDDoc.Filename == "id.png" &&
				in.Photo == nil
		})).Return(&entity.OrderView{ID: "v1", Wizard: entity.WizardView{Message: "Orden cerrada"}}, nil)

		out, _, err := fx.run("close", "42", "--jwt", "tok")

		require.NoError(t, err)
		assert.Equal(t, "Orden cerrada\n", out)
	})

	t.Run("rejected submission keeps the server message", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.readyView("absence_of_resident")
		photo := writeFile(t, "door.jpg", []byte("jpeg"))

		fx.workflow.EXPECT().Choose(mock.Anything, "v1", entity.OutcomeFailed).Return(&entity.OrderView{ID: "v1"}, nil)
		fx.workflow.EXPECT().Submit(mock.Anything, "v1", mock.Anything).
			Return(nil, domainerrors.NewUpstreamError(400, "La orden ya fue cerrada", nil))

		_, _, err := fx.run("close", "42", "--jwt", "tok", "--outcome", "failed", "--photo", photo)

		require.Error(t, err)
		assert.Contains(t, ErrorMessage(err), "La orden ya fue cerrada")
	})

	t.Run("unknown outcome", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.readyView()

		_, _, err := fx.run("close", "42", "--jwt", "tok", "--outcome", "maybe")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("missing photo file", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.readyView()

		_, _, err := fx.run("close", "42", "--jwt", "tok", "--outcome", "failed",
			"--photo", filepath.Join(t.TempDir(), "missing.jpg"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.jpg")
	})
}

func TestOpen(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.readyView()

		out, _, err := fx.run("open", "42", "--jwt", "tok")

		require.NoError(t, err)
		assert.Contains(t, out, "READY")
		assert.Contains(t, out, "in_use")
		assert.Contains(t, out, "Ana")
	})

	t.Run("slow start notification does not block closing", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.workflow.EXPECT().OpenView(mock.Anything, "42").Return(&entity.OrderView{ID: "v1"}, nil)
		fx.workflow.EXPECT().ValidateAccess(mock.Anything, "v1", "tok").Return(&entity.OrderView{
			ID:     "v1",
			Access: entity.AccessState{Phase: entity.AccessReady, OrderID: "42"},
		}, nil)
		await := fx.workflow.EXPECT().AwaitStart(mock.Anything, "v1").
			RunAndReturn(func(ctx context.Context, _ string) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)

				return context.DeadlineExceeded
			}).Once()
		fx.workflow.EXPECT().CloseView(mock.Anything, "v1").Return(nil).Once().NotBefore(await)

		out, _, err := fx.run("open", "42", "--jwt", "tok")

		require.NoError(t, err)
		assert.Contains(t, out, "READY")
	})

	t.Run("rejected token", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.workflow.EXPECT().OpenView(mock.Anything, "42").Return(&entity.OrderView{ID: "v1"}, nil)
		fx.workflow.EXPECT().ValidateAccess(mock.Anything, "v1", "bad").Return(&entity.OrderView{
			ID:     "v1",
			Access: entity.AccessState{Phase: entity.AccessFailed, Error: "Token inválido o expirado"},
		}, nil)
		fx.expectTeardown()

		_, _, err := fx.run("open", "42", "--jwt", "bad")

		require.Error(t, err)
		assert.Equal(t, "Token inválido o expirado", err.Error())
	})

	t.Run("missing token", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.workflow.EXPECT().OpenView(mock.Anything, "42").Return(&entity.OrderView{ID: "v1"}, nil)
		fx.workflow.EXPECT().ValidateAccess(mock.Anything, "v1", "").Return(&entity.OrderView{
			ID:     "v1",
			Access: entity.AccessState{Phase: entity.AccessMissingCredentials},
		}, nil)
		fx.expectTeardown()

		_, _, err := fx.run("open", "42")

		assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
	})
}

func TestScan(t *testing.T) {
	fx := createTestCLI(t)
	fx.scanner.EXPECT().Scan(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, source service.FrameSource, onError func(error)) (*entity.NavigationTarget, error) {
			assert.NotNil(t, source)
			onError(domainerrors.ErrInvalidQRPayload)

			return &entity.NavigationTarget{OrderID: "42", Token: "a.b.c"}, nil
		})

	out, errOut, err := fx.run("scan", "first.png", "second.png")

	require.NoError(t, err)
	assert.Contains(t, out, "Order: 42")
	assert.Contains(t, out, "/orders/42/open#jwt=a.b.c")
	assert.Contains(t, errOut, "skipped: ")
}

func TestQR(t *testing.T) {
	fx := createTestCLI(t)
	fx.loggedInAs(entity.RoleTechnician)
	fx.orders.EXPECT().OpenLinkQR(mock.Anything, "42", "").
		Return(&entity.OpenLinkQR{Link: "http://x/open?id=42", PNG: []byte("png")}, nil)
	out := filepath.Join(t.TempDir(), "qr.png")

	stdout, _, err := fx.run("qr", "42", "--out", out)

	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
	assert.Contains(t, stdout, "3 B")
}

func TestPDF(t *testing.T) {
	fx := createTestCLI(t)
	fx.loggedInAs(entity.RoleAdmin)
	fx.reports.EXPECT().Download(mock.Anything, "42", true, true).Return(&entity.Report{
		Document:   &entity.Document{Filename: "orden_42_full.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.7")},
		ArchiveKey: "reports/42/20260301T120000Z-orden_42_full.pdf",
	}, nil)
	out := filepath.Join(t.TempDir(), "report.pdf")

	stdout, _, err := fx.run("pdf", "42", "--full", "--archive", "-o", out)

	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))
	assert.Contains(t, stdout, "Archived as reports/42/")
}

func TestAudits(t *testing.T) {
	fx := createTestCLI(t)
	fx.loggedInAs(entity.RoleAdmin)
	fx.orders.EXPECT().Audits(mock.Anything, "42").Return([]*entity.AuditEntry{
		{ID: 1, Action: "status_change", CreatedAt: testNow},
	}, nil)

	out, _, err := fx.run("audits", "42")

	require.NoError(t, err)
	assert.Contains(t, out, "status_change")
}

func TestUsers(t *testing.T) {
	t.Run("list by role", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.loggedInAs(entity.RoleAdmin)
		fx.users.EXPECT().ListUsers(mock.Anything, entity.RoleTechnician).Return([]*entity.User{
			{ID: 3, Username: "ana", FirstName: "Ana", LastName: "Ruiz", Role: entity.RoleTechnician, IsActive: true},
		}, nil)

		out, _, err := fx.run("users", "list", "--role", "tecnico")

		require.NoError(t, err)
		assert.Contains(t, out, "Ana Ruiz")
		assert.Contains(t, out, "yes")
	})

	t.Run("create", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.loggedInAs(entity.RoleAdmin)
		fx.users.EXPECT().CreateUser(mock.Anything, entity.NewUser{Username: "luis", Password: "pw", Role: entity.RoleAdmin}).
			Return(&entity.User{ID: 8, Username: "luis", Role: entity.RoleAdmin}, nil)

		out, _, err := fx.run("users", "create", "--username", "luis", "--password", "pw", "--role", "admin")

		require.NoError(t, err)
		assert.Equal(t, "Created user luis (8, ADMIN)\n", out)
	})

	t.Run("deactivate", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.loggedInAs(entity.RoleAdmin)
		fx.users.EXPECT().SetActive(mock.Anything, int64(3), false).Return(nil)

		out, _, err := fx.run("users", "deactivate", "3")

		require.NoError(t, err)
		assert.Equal(t, "User 3 active: no\n", out)
	})

	t.Run("role", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.loggedInAs(entity.RoleAdmin)
		fx.users.EXPECT().SetRole(mock.Anything, int64(3), entity.RoleAdmin).Return(nil)

		_, _, err := fx.run("users", "role", "3", "admin")

		require.NoError(t, err)
	})

	t.Run("invalid id", func(t *testing.T) {
		fx := createTestCLI(t)
		fx.loggedInAs(entity.RoleAdmin)

		_, _, err := fx.run("users", "activate", "abc")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestApp_Close(t *testing.T) {
	var order []string
	app := &App{}
	app.OnClose(func() error {
		order = append(order, "first")

		return errors.New("first failed")
	})
	app.OnClose(func() error {
		order = append(order, "second")

		return errors.New("second failed")
	})

	err := app.Close()

	assert.Equal(t, []string{"second", "first"}, order)
	assert.EqualError(t, err, "second failed")
	assert.NoError(t, app.Close())
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "plain", ErrorMessage(errors.New("plain")))

	withDetails := ErrorMessage(errors.WithStack(domainerrors.ErrForbidden.WithDetails("needs ADMIN")))
	assert.Contains(t, withDetails, "needs ADMIN")
	assert.Contains(t, withDetails, domainerrors.ErrForbidden.Message())
}
