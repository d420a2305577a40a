package draw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	drawv1 "github.com/mcdev12/pelada/go/internal/genproto/draw/v1"
	"github.com/mcdev12/pelada/go/internal/genproto/draw/v1/drawv1connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, env *testEnv) drawv1connect.DrawServiceClient {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle(drawv1connect.NewDrawServiceHandler(NewService(env.app)))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return drawv1connect.NewDrawServiceClient(server.Client(), server.URL)
}

func TestService_CreateAndGetLatest(t *testing.T) {
	env := newTestEnv(t, 15)
	client := newTestServer(t, env)
	ctx := context.Background()

	created, err := client.CreateDraw(ctx, connect.NewRequest(&drawv1.CreateDrawRequest{
		MatchId:   "match-1",
		PlayerIds: env.ids,
		Seed:      seedPtr(7),
	}))
	require.NoError(t, err)
	draw := created.Msg.GetDraw()
	require.NotNil(t, draw)
	assert.Equal(t, int64(7), draw.GetSeed())
	assert.True(t, draw.GetCreatedAt().AsTime().Equal(testNow))

	colors := make([]string, 0, len(draw.GetTeams()))
	assigned := 0
	for _, team := range draw.GetTeams() {
		colors = append(colors, team.GetColor())
		assigned += len(team.GetPlayers())
	}
	assert.Equal(t, []string{"blue", "red", "green"}, colors)
	assert.Equal(t, 15, assigned)

	stored := env.repo.draws[0]
	assert.Equal(t, stored.ID.String(), draw.GetId())
	blue := draw.GetTeams()[0]
	assert.InDelta(t, stored.Teams["blue"].TotalSkill, blue.GetTotalSkill(), 1e-9)
	assert.Len(t, blue.GetPlayers(), len(stored.Teams["blue"].Players))

	latest, err := client.GetLatestDraw(ctx, connect.NewRequest(&drawv1.GetLatestDrawRequest{MatchId: "match-1"}))
	require.NoError(t, err)
	assert.Equal(t, draw.GetId(), latest.Msg.GetDraw().GetId())
	assert.Equal(t, colors[0], latest.Msg.GetDraw().GetTeams()[0].GetColor())
}

func TestService_UniqueDrawLinksPrevious(t *testing.T) {
	env := newTestEnv(t, 15)
	client := newTestServer(t, env)
	ctx := context.Background()

	first, err := client.CreateDraw(ctx, connect.NewRequest(&drawv1.CreateDrawRequest{MatchId: "match-1", PlayerIds: env.ids, Seed: seedPtr(3)}))
	require.NoError(t, err)

	second, err := client.CreateDraw(ctx, connect.NewRequest(&drawv1.CreateDrawRequest{MatchId: "match-1", PlayerIds: env.ids, Unique: true}))
	require.NoError(t, err)
	assert.Equal(t, first.Msg.GetDraw().GetId(), second.Msg.GetDraw().GetPreviousDrawId())
}

func TestService_ErrorCodes(t *testing.T) {
	env := newTestEnv(t, 5)
	client := newTestServer(t, env)
	ctx := context.Background()

	_, err := client.GetLatestDraw(ctx, connect.NewRequest(&drawv1.GetLatestDrawRequest{MatchId: "missing"}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = client.CreateDraw(ctx, connect.NewRequest(&drawv1.CreateDrawRequest{MatchId: "match-1", PlayerIds: env.ids}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = client.CreateDraw(ctx, connect.NewRequest(&drawv1.CreateDrawRequest{MatchId: "match-1", PlayerIds: []string{"ghost"}}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.PreviewTeams(ctx, connect.NewRequest(&drawv1.PreviewTeamsRequest{PlayerCount: 12, PlayersPerTeam: 9}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.ValidateSelection(ctx, connect.NewRequest(&drawv1.ValidateSelectionRequest{PlayerCount: -3}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestService_ValidateAndPreview(t *testing.T) {
	env := newTestEnv(t, 6)
	client := newTestServer(t, env)
	ctx := context.Background()

	v, err := client.ValidateSelection(ctx, connect.NewRequest(&drawv1.ValidateSelectionRequest{PlayerCount: 4}))
	require.NoError(t, err)
	assert.False(t, v.Msg.GetValid())
	assert.Equal(t, int32(6), v.Msg.GetMinRequired())
	assert.NotEmpty(t, v.Msg.GetMessage())

	preview, err := client.PreviewTeams(ctx, connect.NewRequest(&drawv1.PreviewTeamsRequest{PlayerCount: 26}))
	require.NoError(t, err)
	assert.Equal(t, int32(4), preview.Msg.GetNumTeams())
	assert.Equal(t, int32(7), preview.Msg.GetPerTeamLimit())
	assert.Equal(t, []string{"blue", "red", "green", "yellow"}, preview.Msg.GetColors())
}

func TestService_JSONClient(t *testing.T) {
	env := newTestEnv(t, 6)
	mux := http.NewServeMux()
	mux.Handle(drawv1connect.NewDrawServiceHandler(NewService(env.app)))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := drawv1connect.NewDrawServiceClient(server.Client(), server.URL, connect.WithProtoJSON())
	v, err := client.ValidateSelection(context.Background(), connect.NewRequest(&drawv1.ValidateSelectionRequest{PlayerCount: 6}))
	require.NoError(t, err)
	assert.True(t, v.Msg.GetValid())
}

func TestService_UnknownProcedure(t *testing.T) {
	env := newTestEnv(t, 6)
	mux := http.NewServeMux()
	mux.Handle(drawv1connect.NewDrawServiceHandler(NewService(env.app)))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/"+drawv1connect.DrawServiceName+"/DeleteDraw", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
