package ticket

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "chamados/internal/application/ticket/dto"
	"chamados/internal/application/ticket/usecases"
	"chamados/internal/interfaces/http/handlers/testutil"
	"chamados/internal/shared/authorization"
	"chamados/internal/shared/errors"
)

type mockCreateTicketUC struct {
	result  *ticketdto.TicketDTO
	err     error
	gotCmd  usecases.CreateTicketCommand
	invoked bool
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*ticketdto.TicketDTO, error) {
	m.invoked = true
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result   []*ticketdto.TicketDTO
	err      error
	gotQuery usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(_ context.Context, query usecases.ListTicketsQuery) ([]*ticketdto.TicketDTO, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockCompleteTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockCompleteTicketUC) Execute(_ context.Context, _ usecases.CompleteTicketCommand) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockRequestOnSiteHelpUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockRequestOnSiteHelpUC) Execute(_ context.Context, _ usecases.RequestOnSiteHelpCommand) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type testDeps struct {
	createUC   usecases.CreateTicketExecutor
	getUC      usecases.GetTicketExecutor
	listUC     usecases.ListTicketsExecutor
	completeUC usecases.CompleteTicketExecutor
	helpUC     usecases.RequestOnSiteHelpExecutor
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(deps.createUC, deps.getUC, deps.listUC, deps.completeUC, deps.helpUC)
}

func sampleTicketDTO() *ticketdto.TicketDTO {
	return &ticketdto.TicketDTO{
		ID:            42,
		OwnerID:       5,
		SubmitterName: "Maria",
		Severity:      "alta",
		Description:   "printer on fire",
		Status:        "open",
		CreatedAt:     time.Now(),
	}
}

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{result: sampleTicketDTO()}
	handler := newTestTicketHandler(testDeps{createUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", CreateTicketRequest{
		Name:        "Maria",
		Severity:    "alta",
		Description: "printer on fire",
	})
	testutil.SetActor(c, 5, authorization.RoleUser)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.OK)
	assert.NotNil(t, resp.Data)

	assert.Equal(t, uint(5), mockUC.gotCmd.Actor.ID, "actor flows from the context, not the payload")
	assert.Equal(t, "Maria", mockUC.gotCmd.SubmitterName)
}

func TestTicketHandler_CreateTicket_MalformedBody(t *testing.T) {
	mockUC := &mockCreateTicketUC{}
	handler := newTestTicketHandler(testDeps{createUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", "not-an-object")
	testutil.SetActor(c, 5, authorization.RoleUser)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockUC.invoked)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "invalid request body", resp.Error)
}

func TestTicketHandler_GetTicket_Success(t *testing.T) {
	handler := newTestTicketHandler(testDeps{getUC: &mockGetTicketUC{result: sampleTicketDTO()}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/42", nil)
	testutil.SetActor(c, 5, authorization.RoleUser)
	testutil.SetURLParam(c, "id", "42")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.OK)
}

func TestTicketHandler_GetTicket_InvalidID(t *testing.T) {
	handler := newTestTicketHandler(testDeps{getUC: &mockGetTicketUC{}})

	for _, id := range []string{"abc", "0", "-1", ""} {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/"+id, nil)
		testutil.SetActor(c, 5, authorization.RoleUser)
		testutil.SetURLParam(c, "id", id)

		handler.GetTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.OK)
		assert.Equal(t, "invalid ticket ID", resp.Error)
	}
}

func TestTicketHandler_GetTicket_Forbidden(t *testing.T) {
	handler := newTestTicketHandler(testDeps{
		getUC: &mockGetTicketUC{err: errors.NewForbiddenError("access denied")},
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/42", nil)
	testutil.SetActor(c, 9, authorization.RoleUser)
	testutil.SetURLParam(c, "id", "42")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "access denied", resp.Error)
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	handler := newTestTicketHandler(testDeps{
		getUC: &mockGetTicketUC{err: errors.NewNotFoundError("ticket not found")},
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/999", nil)
	testutil.SetActor(c, 2, authorization.RoleTech)
	testutil.SetURLParam(c, "id", "999")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_ListAllTickets(t *testing.T) {
	mockUC := &mockListTicketsUC{result: []*ticketdto.TicketDTO{sampleTicketDTO()}}
	handler := newTestTicketHandler(testDeps{listUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetActor(c, 2, authorization.RoleTech)
	testutil.SetQueryParams(c, map[string]string{"status": "closed"})

	handler.ListAllTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ScopeAll, mockUC.gotQuery.Scope)
	assert.Equal(t, "closed", mockUC.gotQuery.Status)
}

func TestTicketHandler_ListOwnTickets(t *testing.T) {
	mockUC := &mockListTicketsUC{result: []*ticketdto.TicketDTO{}}
	handler := newTestTicketHandler(testDeps{listUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/user/tickets", nil)
	testutil.SetActor(c, 5, authorization.RoleUser)

	handler.ListOwnTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ScopeOwn, mockUC.gotQuery.Scope)
	assert.Equal(t, "", mockUC.gotQuery.Status, "absent status flows through for the use case to normalize")
}

func TestTicketHandler_CompleteTicket_Success(t *testing.T) {
	closed := sampleTicketDTO()
	closed.Status = "closed"
	now := time.Now()
	closed.ClosedAt = &now

	handler := newTestTicketHandler(testDeps{completeUC: &mockCompleteTicketUC{result: closed}})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/42/complete", nil)
	testutil.SetActor(c, 5, authorization.RoleUser)
	testutil.SetURLParam(c, "id", "42")

	handler.CompleteTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.OK)
}

func TestTicketHandler_RequestOnSiteHelp_Success(t *testing.T) {
	flagged := sampleTicketDTO()
	flagged.OnSiteHelp = true

	handler := newTestTicketHandler(testDeps{helpUC: &mockRequestOnSiteHelpUC{result: flagged}})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/42/help", nil)
	testutil.SetActor(c, 5, authorization.RoleUser)
	testutil.SetURLParam(c, "id", "42")

	handler.RequestOnSiteHelp(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_InternalErrorIsOpaque(t *testing.T) {
	handler := newTestTicketHandler(testDeps{
		completeUC: &mockCompleteTicketUC{err: context.DeadlineExceeded},
	})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/42/complete", nil)
	testutil.SetActor(c, 5, authorization.RoleUser)
	testutil.SetURLParam(c, "id", "42")

	handler.CompleteTicket(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
