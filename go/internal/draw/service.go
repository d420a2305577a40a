package draw

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	drawv1 "github.com/mcdev12/pelada/go/internal/genproto/draw/v1"
	"github.com/mcdev12/pelada/go/internal/genproto/draw/v1/drawv1connect"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/mcdev12/pelada/go/internal/player"
	"github.com/mcdev12/pelada/go/internal/teamdraw"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// DrawApp defines what the service layer needs from the draw application
type DrawApp interface {
	CreateDraw(ctx context.Context, req CreateDrawRequest) (*models.DrawResult, error)
	GetLatestDraw(ctx context.Context, matchID string) (*models.DrawResult, error)
	ValidateSelection(playerCount int) teamdraw.SelectionValidation
	PreviewTeams(playerCount, playersPerTeam int) (*TeamPreview, error)
}

// Service implements the DrawService Connect interface
type Service struct {
	app DrawApp
}

// NewService creates a new draw service
func NewService(app DrawApp) *Service {
	return &Service{app: app}
}

var _ drawv1connect.DrawServiceHandler = (*Service)(nil)

// CreateDraw draws and stores teams for a match
func (s *Service) CreateDraw(ctx context.Context, req *connect.Request[drawv1.CreateDrawRequest]) (*connect.Response[drawv1.CreateDrawResponse], error) {
	draw, err := s.app.CreateDraw(ctx, s.protoToCreateDrawRequest(req.Msg))
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&drawv1.CreateDrawResponse{Draw: s.drawToProto(draw)}), nil
}

// GetLatestDraw returns the newest stored draw for a match
func (s *Service) GetLatestDraw(ctx context.Context, req *connect.Request[drawv1.GetLatestDrawRequest]) (*connect.Response[drawv1.GetLatestDrawResponse], error) {
	draw, err := s.app.GetLatestDraw(ctx, req.Msg.MatchId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&drawv1.GetLatestDrawResponse{Draw: s.drawToProto(draw)}), nil
}

func (s *Service) ValidateSelection(_ context.Context, req *connect.Request[drawv1.ValidateSelectionRequest]) (*connect.Response[drawv1.ValidateSelectionResponse], error) {
	if req.Msg.PlayerCount < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("player_count must not be negative"))
	}
	v := s.app.ValidateSelection(int(req.Msg.PlayerCount))
	return connect.NewResponse(&drawv1.ValidateSelectionResponse{
		Valid:       v.Valid,
		Message:     v.Message,
		MinRequired: int32(v.MinRequired),
	}), nil
}

func (s *Service) PreviewTeams(_ context.Context, req *connect.Request[drawv1.PreviewTeamsRequest]) (*connect.Response[drawv1.PreviewTeamsResponse], error) {
	preview, err := s.app.PreviewTeams(int(req.Msg.PlayerCount), int(req.Msg.PlayersPerTeam))
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&drawv1.PreviewTeamsResponse{
		NumTeams:     int32(preview.NumTeams),
		PerTeamLimit: int32(preview.PerTeamLimit),
		Colors: lo.Map(preview.Colors, func(c models.TeamColor, _ int) string {
			return string(c)
		}),
		Overflow: int32(preview.Overflow),
	}), nil
}

// Conversion methods between proto and app layer models

func (s *Service) protoToCreateDrawRequest(msg *drawv1.CreateDrawRequest) CreateDrawRequest {
	return CreateDrawRequest{
		MatchID:        msg.MatchId,
		PlayerIDs:      msg.PlayerIds,
		Seed:           msg.Seed,
		PlayersPerTeam: int(msg.PlayersPerTeam),
		Unique:         msg.Unique,
	}
}

// drawToProto lists teams in color order so clients get a stable layout.
func (s *Service) drawToProto(draw *models.DrawResult) *drawv1.Draw {
	proto := &drawv1.Draw{
		Id:                draw.ID.String(),
		MatchId:           draw.MatchID,
		SelectedPlayerIds: draw.SelectedPlayerIDs,
		Seed:              draw.Seed,
		CreatedAt:         timestamppb.New(draw.CreatedAt),
		Stats: &drawv1.DrawStats{
			AverageSkill: draw.Stats.AverageSkill,
			MinSkill:     draw.Stats.MinSkill,
			MaxSkill:     draw.Stats.MaxSkill,
			Variance:     draw.Stats.Variance,
		},
		Unassigned: lo.Map(draw.Unassigned, s.playerToProto),
	}

	for _, color := range models.AllTeamColors {
		bucket, ok := draw.Teams[color]
		if !ok {
			continue
		}
		proto.Teams = append(proto.Teams, &drawv1.Team{
			Color:      string(color),
			Players:    lo.Map(bucket.Players, s.playerToProto),
			TotalSkill: bucket.TotalSkill,
		})
	}

	if draw.PreviousDrawID != nil {
		proto.PreviousDrawId = draw.PreviousDrawID.String()
	}
	return proto
}

func (s *Service) playerToProto(p models.Player, _ int) *drawv1.Player {
	return &drawv1.Player{
		Id:          p.ID,
		Name:        p.Name,
		Position:    p.Position,
		SkillRating: p.SkillRating,
		Role:        string(p.Role),
	}
}

func toConnectError(err error) error {
	switch {
	case errors.Is(err, ErrDrawNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ErrNotEnoughPlayers):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, teamdraw.ErrInvalidPlayer),
		errors.Is(err, teamdraw.ErrDuplicatePlayer),
		errors.Is(err, teamdraw.ErrInvalidPlayersPerTeam),
		errors.Is(err, player.ErrNoPlayers),
		errors.Is(err, player.ErrPlayerNotFound):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
