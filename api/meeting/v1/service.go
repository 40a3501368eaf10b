package meetingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "meeting.v1.MeetingService"

const (
	MeetingService_Login_FullMethodName         = "/meeting.v1.MeetingService/Login"
	MeetingService_Logout_FullMethodName        = "/meeting.v1.MeetingService/Logout"
	MeetingService_GetSession_FullMethodName    = "/meeting.v1.MeetingService/GetSession"
	MeetingService_ListMeetings_FullMethodName  = "/meeting.v1.MeetingService/ListMeetings"
	MeetingService_GetMeeting_FullMethodName    = "/meeting.v1.MeetingService/GetMeeting"
	MeetingService_CreateMeeting_FullMethodName = "/meeting.v1.MeetingService/CreateMeeting"
	MeetingService_UpdateMeeting_FullMethodName = "/meeting.v1.MeetingService/UpdateMeeting"
	MeetingService_DeleteMeeting_FullMethodName = "/meeting.v1.MeetingService/DeleteMeeting"
	MeetingService_ValidateDraft_FullMethodName = "/meeting.v1.MeetingService/ValidateDraft"
)

type MeetingServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error)
	ListMeetings(context.Context, *ListMeetingsRequest) (*ListMeetingsResponse, error)
	GetMeeting(context.Context, *GetMeetingRequest) (*GetMeetingResponse, error)
	CreateMeeting(context.Context, *CreateMeetingRequest) (*CreateMeetingResponse, error)
	UpdateMeeting(context.Context, *UpdateMeetingRequest) (*UpdateMeetingResponse, error)
	DeleteMeeting(context.Context, *DeleteMeetingRequest) (*DeleteMeetingResponse, error)
	ValidateDraft(context.Context, *ValidateDraftRequest) (*ValidateDraftResponse, error)
}

// UnimplementedMeetingServiceServer can be embedded to satisfy
// MeetingServiceServer while methods are filled in.
type UnimplementedMeetingServiceServer struct{}

func (UnimplementedMeetingServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedMeetingServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedMeetingServiceServer) GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSession not implemented")
}
func (UnimplementedMeetingServiceServer) ListMeetings(context.Context, *ListMeetingsRequest) (*ListMeetingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMeetings not implemented")
}
func (UnimplementedMeetingServiceServer) GetMeeting(context.Context, *GetMeetingRequest) (*GetMeetingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMeeting not implemented")
}
func (UnimplementedMeetingServiceServer) CreateMeeting(context.Context, *CreateMeetingRequest) (*CreateMeetingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMeeting not implemented")
}
func (UnimplementedMeetingServiceServer) UpdateMeeting(context.Context, *UpdateMeetingRequest) (*UpdateMeetingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateMeeting not implemented")
}
func (UnimplementedMeetingServiceServer) DeleteMeeting(context.Context, *DeleteMeetingRequest) (*DeleteMeetingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteMeeting not implemented")
}
func (UnimplementedMeetingServiceServer) ValidateDraft(context.Context, *ValidateDraftRequest) (*ValidateDraftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateDraft not implemented")
}

// unary builds the MethodDesc for one RPC. The request is decoded by the
// server's codec and passed through the interceptor chain.
func unary[Req any, PReq interface {
	*Req
	Message
}, Resp any](name string, call func(MeetingServiceServer, context.Context, PReq) (Resp, error)) grpc.MethodDesc {
	full := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MeetingServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(MeetingServiceServer), ctx, req.(PReq))
			})
		},
	}
}

var MeetingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MeetingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary[LoginRequest]("Login", MeetingServiceServer.Login),
		unary[LogoutRequest]("Logout", MeetingServiceServer.Logout),
		unary[GetSessionRequest]("GetSession", MeetingServiceServer.GetSession),
		unary[ListMeetingsRequest]("ListMeetings", MeetingServiceServer.ListMeetings),
		unary[GetMeetingRequest]("GetMeeting", MeetingServiceServer.GetMeeting),
		unary[CreateMeetingRequest]("CreateMeeting", MeetingServiceServer.CreateMeeting),
		unary[UpdateMeetingRequest]("UpdateMeeting", MeetingServiceServer.UpdateMeeting),
		unary[DeleteMeetingRequest]("DeleteMeeting", MeetingServiceServer.DeleteMeeting),
		unary[ValidateDraftRequest]("ValidateDraft", MeetingServiceServer.ValidateDraft),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "meeting/v1/meeting.proto",
}

// RegisterMeetingServiceServer registers srv on s. The server must be built
// with grpc.ForceServerCodec(Codec{}).
func RegisterMeetingServiceServer(s grpc.ServiceRegistrar, srv MeetingServiceServer) {
	s.RegisterService(&MeetingService_ServiceDesc, srv)
}

type MeetingServiceClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error)
	ListMeetings(ctx context.Context, in *ListMeetingsRequest, opts ...grpc.CallOption) (*ListMeetingsResponse, error)
	GetMeeting(ctx context.Context, in *GetMeetingRequest, opts ...grpc.CallOption) (*GetMeetingResponse, error)
	CreateMeeting(ctx context.Context, in *CreateMeetingRequest, opts ...grpc.CallOption) (*CreateMeetingResponse, error)
	UpdateMeeting(ctx context.Context, in *UpdateMeetingRequest, opts ...grpc.CallOption) (*UpdateMeetingResponse, error)
	DeleteMeeting(ctx context.Context, in *DeleteMeetingRequest, opts ...grpc.CallOption) (*DeleteMeetingResponse, error)
	ValidateDraft(ctx context.Context, in *ValidateDraftRequest, opts ...grpc.CallOption) (*ValidateDraftResponse, error)
}

type meetingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMeetingServiceClient(cc grpc.ClientConnInterface) MeetingServiceClient {
	return &meetingServiceClient{cc}
}

func invoke[Resp any, PResp interface {
	*Resp
	Message
}](ctx context.Context, cc grpc.ClientConnInterface, method string, in Message, opts []grpc.CallOption) (PResp, error) {
	out := PResp(new(Resp))
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *meetingServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MeetingService_Login_FullMethodName, in, opts)
}

func (c *meetingServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, MeetingService_Logout_FullMethodName, in, opts)
}

func (c *meetingServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error) {
	return invoke[GetSessionResponse](ctx, c.cc, MeetingService_GetSession_FullMethodName, in, opts)
}

func (c *meetingServiceClient) ListMeetings(ctx context.Context, in *ListMeetingsRequest, opts ...grpc.CallOption) (*ListMeetingsResponse, error) {
	return invoke[ListMeetingsResponse](ctx, c.cc, MeetingService_ListMeetings_FullMethodName, in, opts)
}

func (c *meetingServiceClient) GetMeeting(ctx context.Context, in *GetMeetingRequest, opts ...grpc.CallOption) (*GetMeetingResponse, error) {
	return invoke[GetMeetingResponse](ctx, c.cc, MeetingService_GetMeeting_FullMethodName, in, opts)
}

func (c *meetingServiceClient) CreateMeeting(ctx context.Context, in *CreateMeetingRequest, opts ...grpc.CallOption) (*CreateMeetingResponse, error) {
	return invoke[CreateMeetingResponse](ctx, c.cc, MeetingService_CreateMeeting_FullMethodName, in, opts)
}

func (c *meetingServiceClient) UpdateMeeting(ctx context.Context, in *UpdateMeetingRequest, opts ...grpc.CallOption) (*UpdateMeetingResponse, error) {
	return invoke[UpdateMeetingResponse](ctx, c.cc, MeetingService_UpdateMeeting_FullMethodName, in, opts)
}

func (c *meetingServiceClient) DeleteMeeting(ctx context.Context, in *DeleteMeetingRequest, opts ...grpc.CallOption) (*DeleteMeetingResponse, error) {
	return invoke[DeleteMeetingResponse](ctx, c.cc, MeetingService_DeleteMeeting_FullMethodName, in, opts)
}

func (c *meetingServiceClient) ValidateDraft(ctx context.Context, in *ValidateDraftRequest, opts ...grpc.CallOption) (*ValidateDraftResponse, error) {
	return invoke[ValidateDraftResponse](ctx, c.cc, MeetingService_ValidateDraft_FullMethodName, in, opts)
}
