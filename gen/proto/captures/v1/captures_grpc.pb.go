// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: captures/v1/captures.proto

package capturespb

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
	CaptureService_ProcessCapture_FullMethodName = "/captures.v1.CaptureService/ProcessCapture"
	CaptureService_ProcessInbox_FullMethodName   = "/captures.v1.CaptureService/ProcessInbox"
	CaptureService_DrainPending_FullMethodName   = "/captures.v1.CaptureService/DrainPending"
	CaptureService_ReprocessSince_FullMethodName = "/captures.v1.CaptureService/ReprocessSince"
	CaptureService_ListItems_FullMethodName      = "/captures.v1.CaptureService/ListItems"
	CaptureService_GetItem_FullMethodName        = "/captures.v1.CaptureService/GetItem"
	CaptureService_ExportItems_FullMethodName    = "/captures.v1.CaptureService/ExportItems"
)

// CaptureServiceClient is the client API for CaptureService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type CaptureServiceClient interface {
	// ProcessCapture runs one capture through the pipeline with priority,
	// superseding any running drain.
	ProcessCapture(ctx context.Context, in *ProcessCaptureRequest, opts ...grpc.CallOption) (*ProcessCaptureResponse, error)
	// ProcessInbox scans the configured inbox roots once and drains the
	// resulting captures.
	ProcessInbox(ctx context.Context, in *ProcessInboxRequest, opts ...grpc.CallOption) (*ProcessInboxResponse, error)
	// DrainPending processes the stored capture backlog.
	DrainPending(ctx context.Context, in *DrainPendingRequest, opts ...grpc.CallOption) (*DrainPendingResponse, error)
	// ReprocessSince re-runs enrichment for items created since a date,
	// streaming per-batch progress.
	ReprocessSince(ctx context.Context, in *ReprocessSinceRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ReprocessProgress], error)
	ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error)
	GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error)
	// ExportItems returns an XLSX workbook of processed items.
	ExportItems(ctx context.Context, in *ExportItemsRequest, opts ...grpc.CallOption) (*ExportItemsResponse, error)
}

type captureServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCaptureServiceClient(cc grpc.ClientConnInterface) CaptureServiceClient {
	return &captureServiceClient{cc}
}

func (c *captureServiceClient) ProcessCapture(ctx context.Context, in *ProcessCaptureRequest, opts ...grpc.CallOption) (*ProcessCaptureResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessCaptureResponse)
	err := c.cc.Invoke(ctx, CaptureService_ProcessCapture_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) ProcessInbox(ctx context.Context, in *ProcessInboxRequest, opts ...grpc.CallOption) (*ProcessInboxResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessInboxResponse)
	err := c.cc.Invoke(ctx, CaptureService_ProcessInbox_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) DrainPending(ctx context.Context, in *DrainPendingRequest, opts ...grpc.CallOption) (*DrainPendingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DrainPendingResponse)
	err := c.cc.Invoke(ctx, CaptureService_DrainPending_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) ReprocessSince(ctx context.Context, in *ReprocessSinceRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ReprocessProgress], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &CaptureService_ServiceDesc.Streams[0], CaptureService_ReprocessSince_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[ReprocessSinceRequest, ReprocessProgress]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type CaptureService_ReprocessSinceClient = grpc.ServerStreamingClient[ReprocessProgress]

func (c *captureServiceClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListItemsResponse)
	err := c.cc.Invoke(ctx, CaptureService_ListItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetItemResponse)
	err := c.cc.Invoke(ctx, CaptureService_GetItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) ExportItems(ctx context.Context, in *ExportItemsRequest, opts ...grpc.CallOption) (*ExportItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportItemsResponse)
	err := c.cc.Invoke(ctx, CaptureService_ExportItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CaptureServiceServer is the server API for CaptureService service.
// All implementations must embed UnimplementedCaptureServiceServer
// for forward compatibility.
type CaptureServiceServer interface {
	// ProcessCapture runs one capture through the pipeline with priority,
	// superseding any running drain.
	ProcessCapture(context.Context, *ProcessCaptureRequest) (*ProcessCaptureResponse, error)
	// ProcessInbox scans the configured inbox roots once and drains the
	// resulting captures.
	ProcessInbox(context.Context, *ProcessInboxRequest) (*ProcessInboxResponse, error)
	// DrainPending processes the stored capture backlog.
	DrainPending(context.Context, *DrainPendingRequest) (*DrainPendingResponse, error)
	// ReprocessSince re-runs enrichment for items created since a date,
	// streaming per-batch progress.
	ReprocessSince(*ReprocessSinceRequest, grpc.ServerStreamingServer[ReprocessProgress]) error
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error)
	// ExportItems returns an XLSX workbook of processed items.
	ExportItems(context.Context, *ExportItemsRequest) (*ExportItemsResponse, error)
	mustEmbedUnimplementedCaptureServiceServer()
}

// UnimplementedCaptureServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCaptureServiceServer struct{}

func (UnimplementedCaptureServiceServer) ProcessCapture(context.Context, *ProcessCaptureRequest) (*ProcessCaptureResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProcessCapture not implemented")
}
func (UnimplementedCaptureServiceServer) ProcessInbox(context.Context, *ProcessInboxRequest) (*ProcessInboxResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProcessInbox not implemented")
}
func (UnimplementedCaptureServiceServer) DrainPending(context.Context, *DrainPendingRequest) (*DrainPendingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DrainPending not implemented")
}
func (UnimplementedCaptureServiceServer) ReprocessSince(*ReprocessSinceRequest, grpc.ServerStreamingServer[ReprocessProgress]) error {
	return status.Error(codes.Unimplemented, "method ReprocessSince not implemented")
}
func (UnimplementedCaptureServiceServer) ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListItems not implemented")
}
func (UnimplementedCaptureServiceServer) GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetItem not implemented")
}
func (UnimplementedCaptureServiceServer) ExportItems(context.Context, *ExportItemsRequest) (*ExportItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportItems not implemented")
}
func (UnimplementedCaptureServiceServer) mustEmbedUnimplementedCaptureServiceServer() {}
func (UnimplementedCaptureServiceServer) testEmbeddedByValue()                        {}

// UnsafeCaptureServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CaptureServiceServer will
// result in compilation errors.
type UnsafeCaptureServiceServer interface {
	mustEmbedUnimplementedCaptureServiceServer()
}

func RegisterCaptureServiceServer(s grpc.ServiceRegistrar, srv CaptureServiceServer) {
	// If the following call panics, it indicates UnimplementedCaptureServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CaptureService_ServiceDesc, srv)
}

func _CaptureService_ProcessCapture_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessCaptureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).ProcessCapture(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_ProcessCapture_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).ProcessCapture(ctx, req.(*ProcessCaptureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_ProcessInbox_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessInboxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).ProcessInbox(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_ProcessInbox_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).ProcessInbox(ctx, req.(*ProcessInboxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_DrainPending_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DrainPendingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).DrainPending(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_DrainPending_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).DrainPending(ctx, req.(*DrainPendingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_ReprocessSince_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ReprocessSinceRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(CaptureServiceServer).ReprocessSince(m, &grpc.GenericServerStream[ReprocessSinceRequest, ReprocessProgress]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type CaptureService_ReprocessSinceServer = grpc.ServerStreamingServer[ReprocessProgress]

func _CaptureService_ListItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).ListItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_ListItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).ListItems(ctx, req.(*ListItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_GetItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).GetItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_GetItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).GetItem(ctx, req.(*GetItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_ExportItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).ExportItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_ExportItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).ExportItems(ctx, req.(*ExportItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CaptureService_ServiceDesc is the grpc.ServiceDesc for CaptureService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CaptureService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "captures.v1.CaptureService",
	HandlerType: (*CaptureServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessCapture",
			Handler:    _CaptureService_ProcessCapture_Handler,
		},
		{
			MethodName: "ProcessInbox",
			Handler:    _CaptureService_ProcessInbox_Handler,
		},
		{
			MethodName: "DrainPending",
			Handler:    _CaptureService_DrainPending_Handler,
		},
		{
			MethodName: "ListItems",
			Handler:    _CaptureService_ListItems_Handler,
		},
		{
			MethodName: "GetItem",
			Handler:    _CaptureService_GetItem_Handler,
		},
		{
			MethodName: "ExportItems",
			Handler:    _CaptureService_ExportItems_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ReprocessSince",
			Handler:       _CaptureService_ReprocessSince_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "captures/v1/captures.proto",
}
