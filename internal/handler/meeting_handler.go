package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "meeting-scheduler/api/meeting/v1"
	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/metrics"
	"meeting-scheduler/internal/model"
)

func (h *Handler) ListMeetings(ctx context.Context, req *pb.ListMeetingsRequest) (*pb.ListMeetingsResponse, error) {
	v, err := h.board.View(ctx, meeting.Query{
		Search:   req.Search,
		Status:   req.Status,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		SortBy:   meeting.SortKey(req.SortBy),
	})
	if err != nil {
		return nil, h.toStatus("list meetings", err)
	}

	out := make([]*pb.Meeting, len(v.Meetings))
	for i := range v.Meetings {
		out[i] = toProto(v.Meetings[i])
	}
	return &pb.ListMeetingsResponse{Meetings: out, Total: int32(v.Total), Empty: string(v.Empty)}, nil
}

func (h *Handler) GetMeeting(ctx context.Context, req *pb.GetMeetingRequest) (*pb.GetMeetingResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	m, err := h.board.Get(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus("get meeting", err)
	}
	return &pb.GetMeetingResponse{Meeting: toProto(m)}, nil
}

func (h *Handler) CreateMeeting(ctx context.Context, req *pb.CreateMeetingRequest) (*pb.CreateMeetingResponse, error) {
	m, err := h.save(ctx, "", req.Draft)
	if err != nil {
		return nil, err
	}
	return &pb.CreateMeetingResponse{Meeting: m}, nil
}

func (h *Handler) UpdateMeeting(ctx context.Context, req *pb.UpdateMeetingRequest) (*pb.UpdateMeetingResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	m, err := h.save(ctx, req.Id, req.Draft)
	if err != nil {
		return nil, err
	}
	return &pb.UpdateMeetingResponse{Meeting: m}, nil
}

func (h *Handler) save(ctx context.Context, id string, d *pb.MeetingDraft) (*pb.Meeting, error) {
	saved, errs, err := h.board.SaveDraft(ctx, id, draftFromProto(d))
	if errors.Is(err, meeting.ErrInvalid) {
		return nil, invalid(errs)
	}
	if err != nil {
		return nil, h.toStatus("save meeting", err)
	}
	return toProto(saved), nil
}

func (h *Handler) DeleteMeeting(ctx context.Context, req *pb.DeleteMeetingRequest) (*pb.DeleteMeetingResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	if err := h.board.Delete(ctx, req.Id); err != nil {
		return nil, h.toStatus("delete meeting", err)
	}
	return &pb.DeleteMeetingResponse{}, nil
}

func (h *Handler) ValidateDraft(_ context.Context, req *pb.ValidateDraftRequest) (*pb.ValidateDraftResponse, error) {
	errs := meeting.Validate(draftFromProto(req.Draft))
	metrics.RecordValidationFailures(errs)

	out := &pb.ValidateDraftResponse{Valid: errs.Valid()}
	for _, f := range []meeting.Field{
		meeting.FieldTitle, meeting.FieldDate, meeting.FieldStartTime,
		meeting.FieldEndTime, meeting.FieldStatus,
	} {
		if msg, ok := errs[f]; ok {
			out.Errors = append(out.Errors, &pb.FieldError{Field: string(f), Message: msg})
		}
	}
	return out, nil
}

func draftFromProto(d *pb.MeetingDraft) meeting.Draft {
	if d == nil {
		return meeting.Draft{}
	}
	return meeting.Draft{
		Title:        d.Title,
		Description:  d.Description,
		Date:         d.Date,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		Participants: d.Participants,
		Status:       d.Status,
	}
}

func toProto(m model.Meeting) *pb.Meeting {
	return &pb.Meeting{
		Id:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Date:         m.Day(),
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Participants: m.Participants,
		CreatedBy:    m.CreatedBy,
		Status:       string(m.Status),
		Seq:          m.Seq,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
