// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: posters.proto

package postersv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	PostersService_UploadPoster_FullMethodName         = "/posters.v1.PostersService/UploadPoster"
	PostersService_GetExtractionJob_FullMethodName     = "/posters.v1.PostersService/GetExtractionJob"
	PostersService_GetPoster_FullMethodName            = "/posters.v1.PostersService/GetPoster"
	PostersService_ListPosters_FullMethodName          = "/posters.v1.PostersService/ListPosters"
	PostersService_UpdatePosterMetadata_FullMethodName = "/posters.v1.PostersService/UpdatePosterMetadata"
	PostersService_ExportPosters_FullMethodName        = "/posters.v1.PostersService/ExportPosters"
	PostersService_GetZenodoConnection_FullMethodName  = "/posters.v1.PostersService/GetZenodoConnection"
	PostersService_DisconnectZenodo_FullMethodName     = "/posters.v1.PostersService/DisconnectZenodo"
	PostersService_PublishPoster_FullMethodName        = "/posters.v1.PostersService/PublishPoster"
)

// PostersServiceClient is the client API for PostersService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type PostersServiceClient interface {
	// UploadPoster accepts the raw poster document and returns immediately with
	// a job id; extraction runs detached from this call.
	UploadPoster(ctx context.Context, in *UploadPosterRequest, opts ...grpc.CallOption) (*UploadPosterResponse, error)
	GetExtractionJob(ctx context.Context, in *GetExtractionJobRequest, opts ...grpc.CallOption) (*GetExtractionJobResponse, error)
	GetPoster(ctx context.Context, in *GetPosterRequest, opts ...grpc.CallOption) (*GetPosterResponse, error)
	ListPosters(ctx context.Context, in *ListPostersRequest, opts ...grpc.CallOption) (*ListPostersResponse, error)
	UpdatePosterMetadata(ctx context.Context, in *UpdatePosterMetadataRequest, opts ...grpc.CallOption) (*UpdatePosterMetadataResponse, error)
	ExportPosters(ctx context.Context, in *ExportPostersRequest, opts ...grpc.CallOption) (*ExportPostersResponse, error)
	// GetZenodoConnection returns the OAuth login URL plus the result of
	// validating any stored token (including the caller's existing depositions).
	GetZenodoConnection(ctx context.Context, in *GetZenodoConnectionRequest, opts ...grpc.CallOption) (*GetZenodoConnectionResponse, error)
	DisconnectZenodo(ctx context.Context, in *DisconnectZenodoRequest, opts ...grpc.CallOption) (*DisconnectZenodoResponse, error)
	// PublishPoster drives the archival publication workflow and streams one
	// progress event per step transition. The stream ends with a terminal
	// "complete" or "error" event.
	PublishPoster(ctx context.Context, in *PublishPosterRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[PublishProgress], error)
}

type postersServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPostersServiceClient(cc grpc.ClientConnInterface) PostersServiceClient {
	return &postersServiceClient{cc}
}

func (c *postersServiceClient) UploadPoster(ctx context.Context, in *UploadPosterRequest, opts ...grpc.CallOption) (*UploadPosterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadPosterResponse)
	err := c.cc.Invoke(ctx, PostersService_UploadPoster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postersServiceClient) GetExtractionJob(ctx context.Context, in *GetExtractionJobRequest, opts ...grpc.CallOption) (*GetExtractionJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetExtractionJobResponse)
	err := c.cc.Invoke(ctx, PostersService_GetExtractionJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postersServiceClient) GetPoster(ctx context.Context, in *GetPosterRequest, opts ...grpc.CallOption) (*GetPosterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPosterResponse)
	err := c.cc.Invoke(ctx, PostersService_GetPoster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postersServiceClient) ListPosters(ctx context.Context, in *ListPostersRequest, opts ...grpc.CallOption) (*ListPostersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPostersResponse)
	err := c.cc.Invoke(ctx, PostersService_ListPosters_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postersServiceClient) UpdatePosterMetadata(ctx context.Context, in *UpdatePosterMetadataRequest, opts ...grpc.CallOption) (*UpdatePosterMetadataResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdatePosterMetadataResponse)
	err := c.cc.Invoke(ctx, PostersService_UpdatePosterMetadata_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postersServiceClient) ExportPosters(ctx context.Context, in *ExportPostersRequest, opts ...grpc.CallOption) (*ExportPostersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportPostersResponse)
	err := c.cc.Invoke(ctx, PostersService_ExportPosters_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postersServiceClient) GetZenodoConnection(ctx context.Context, in *GetZenodoConnectionRequest, opts ...grpc.CallOption) (*GetZenodoConnectionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetZenodoConnectionResponse)
	err := c.cc.Invoke(ctx, PostersService_GetZenodoConnection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postersServiceClient) DisconnectZenodo(ctx context.Context, in *DisconnectZenodoRequest, opts ...grpc.CallOption) (*DisconnectZenodoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DisconnectZenodoResponse)
	err := c.cc.Invoke(ctx, PostersService_DisconnectZenodo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postersServiceClient) PublishPoster(ctx context.Context, in *PublishPosterRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[PublishProgress], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &PostersService_ServiceDesc.Streams[0], PostersService_PublishPoster_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[PublishPosterRequest, PublishProgress]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type PostersService_PublishPosterClient = grpc.ServerStreamingClient[PublishProgress]

// PostersServiceServer is the server API for PostersService service.
// All implementations must embed UnimplementedPostersServiceServer
// for forward compatibility.
type PostersServiceServer interface {
	// UploadPoster accepts the raw poster document and returns immediately with
	// a job id; extraction runs detached from this call.
	UploadPoster(context.Context, *UploadPosterRequest) (*UploadPosterResponse, error)
	GetExtractionJob(context.Context, *GetExtractionJobRequest) (*GetExtractionJobResponse, error)
	GetPoster(context.Context, *GetPosterRequest) (*GetPosterResponse, error)
	ListPosters(context.Context, *ListPostersRequest) (*ListPostersResponse, error)
	UpdatePosterMetadata(context.Context, *UpdatePosterMetadataRequest) (*UpdatePosterMetadataResponse, error)
	ExportPosters(context.Context, *ExportPostersRequest) (*ExportPostersResponse, error)
	// GetZenodoConnection returns the OAuth login URL plus the result of
	// validating any stored token (including the caller's existing depositions).
	GetZenodoConnection(context.Context, *GetZenodoConnectionRequest) (*GetZenodoConnectionResponse, error)
	DisconnectZenodo(context.Context, *DisconnectZenodoRequest) (*DisconnectZenodoResponse, error)
	// PublishPoster drives the archival publication workflow and streams one
	// progress event per step transition. The stream ends with a terminal
	// "complete" or "error" event.
	PublishPoster(*PublishPosterRequest, grpc.ServerStreamingServer[PublishProgress]) error
	mustEmbedUnimplementedPostersServiceServer()
}

// UnimplementedPostersServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPostersServiceServer struct{}

func (UnimplementedPostersServiceServer) UploadPoster(context.Context, *UploadPosterRequest) (*UploadPosterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadPoster not implemented")
}
func (UnimplementedPostersServiceServer) GetExtractionJob(context.Context, *GetExtractionJobRequest) (*GetExtractionJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetExtractionJob not implemented")
}
func (UnimplementedPostersServiceServer) GetPoster(context.Context, *GetPosterRequest) (*GetPosterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPoster not implemented")
}
func (UnimplementedPostersServiceServer) ListPosters(context.Context, *ListPostersRequest) (*ListPostersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPosters not implemented")
}
func (UnimplementedPostersServiceServer) UpdatePosterMetadata(context.Context, *UpdatePosterMetadataRequest) (*UpdatePosterMetadataResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdatePosterMetadata not implemented")
}
func (UnimplementedPostersServiceServer) ExportPosters(context.Context, *ExportPostersRequest) (*ExportPostersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportPosters not implemented")
}
func (UnimplementedPostersServiceServer) GetZenodoConnection(context.Context, *GetZenodoConnectionRequest) (*GetZenodoConnectionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetZenodoConnection not implemented")
}
func (UnimplementedPostersServiceServer) DisconnectZenodo(context.Context, *DisconnectZenodoRequest) (*DisconnectZenodoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DisconnectZenodo not implemented")
}
func (UnimplementedPostersServiceServer) PublishPoster(*PublishPosterRequest, grpc.ServerStreamingServer[PublishProgress]) error {
	return status.Errorf(codes.Unimplemented, "method PublishPoster not implemented")
}
func (UnimplementedPostersServiceServer) mustEmbedUnimplementedPostersServiceServer() {}
func (UnimplementedPostersServiceServer) testEmbeddedByValue()                        {}

// UnsafePostersServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PostersServiceServer will
// result in compilation errors.
type UnsafePostersServiceServer interface {
	mustEmbedUnimplementedPostersServiceServer()
}

func RegisterPostersServiceServer(s grpc.ServiceRegistrar, srv PostersServiceServer) {
	// If the following call pancis, it indicates UnimplementedPostersServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PostersService_ServiceDesc, srv)
}

func _PostersService_UploadPoster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadPosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostersServiceServer).UploadPoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PostersService_UploadPoster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostersServiceServer).UploadPoster(ctx, req.(*UploadPosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PostersService_GetExtractionJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetExtractionJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostersServiceServer).GetExtractionJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PostersService_GetExtractionJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostersServiceServer).GetExtractionJob(ctx, req.(*GetExtractionJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PostersService_GetPoster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostersServiceServer).GetPoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PostersService_GetPoster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostersServiceServer).GetPoster(ctx, req.(*GetPosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PostersService_ListPosters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPostersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostersServiceServer).ListPosters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PostersService_ListPosters_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostersServiceServer).ListPosters(ctx, req.(*ListPostersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PostersService_UpdatePosterMetadata_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdatePosterMetadataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostersServiceServer).UpdatePosterMetadata(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PostersService_UpdatePosterMetadata_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostersServiceServer).UpdatePosterMetadata(ctx, req.(*UpdatePosterMetadataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PostersService_ExportPosters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportPostersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostersServiceServer).ExportPosters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PostersService_ExportPosters_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostersServiceServer).ExportPosters(ctx, req.(*ExportPostersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PostersService_GetZenodoConnection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetZenodoConnectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostersServiceServer).GetZenodoConnection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PostersService_GetZenodoConnection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostersServiceServer).GetZenodoConnection(ctx, req.(*GetZenodoConnectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PostersService_DisconnectZenodo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DisconnectZenodoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PostersServiceServer).DisconnectZenodo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PostersService_DisconnectZenodo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PostersServiceServer).DisconnectZenodo(ctx, req.(*DisconnectZenodoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PostersService_PublishPoster_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(PublishPosterRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(PostersServiceServer).PublishPoster(m, &grpc.GenericServerStream[PublishPosterRequest, PublishProgress]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type PostersService_PublishPosterServer = grpc.ServerStreamingServer[PublishProgress]

// PostersService_ServiceDesc is the grpc.ServiceDesc for PostersService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PostersService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "posters.v1.PostersService",
	HandlerType: (*PostersServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadPoster",
			Handler:    _PostersService_UploadPoster_Handler,
		},
		{
			MethodName: "GetExtractionJob",
			Handler:    _PostersService_GetExtractionJob_Handler,
		},
		{
			MethodName: "GetPoster",
			Handler:    _PostersService_GetPoster_Handler,
		},
		{
			MethodName: "ListPosters",
			Handler:    _PostersService_ListPosters_Handler,
		},
		{
			MethodName: "UpdatePosterMetadata",
			Handler:    _PostersService_UpdatePosterMetadata_Handler,
		},
		{
			MethodName: "ExportPosters",
			Handler:    _PostersService_ExportPosters_Handler,
		},
		{
			MethodName: "GetZenodoConnection",
			Handler:    _PostersService_GetZenodoConnection_Handler,
		},
		{
			MethodName: "DisconnectZenodo",
			Handler:    _PostersService_DisconnectZenodo_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "PublishPoster",
			Handler:       _PostersService_PublishPoster_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "posters.proto",
}
