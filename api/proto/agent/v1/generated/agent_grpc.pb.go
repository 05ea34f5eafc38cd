// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: agent/v1/agent.proto

package agentv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	AgentService_ProposeAction_FullMethodName   = "/agent.v1.AgentService/ProposeAction"
	AgentService_ConfirmAction_FullMethodName   = "/agent.v1.AgentService/ConfirmAction"
	AgentService_GetAgentEvent_FullMethodName   = "/agent.v1.AgentService/GetAgentEvent"
	AgentService_ListAgentEvents_FullMethodName = "/agent.v1.AgentService/ListAgentEvents"
)

// AgentServiceClient is the client API for AgentService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type AgentServiceClient interface {
	ProposeAction(ctx context.Context, in *ProposeActionRequest, opts ...grpc.CallOption) (*ProposeActionResponse, error)
	ConfirmAction(ctx context.Context, in *ConfirmActionRequest, opts ...grpc.CallOption) (*ConfirmActionResponse, error)
	GetAgentEvent(ctx context.Context, in *GetAgentEventRequest, opts ...grpc.CallOption) (*GetAgentEventResponse, error)
	ListAgentEvents(ctx context.Context, in *ListAgentEventsRequest, opts ...grpc.CallOption) (*ListAgentEventsResponse, error)
}

type agentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAgentServiceClient(cc grpc.ClientConnInterface) AgentServiceClient {
	return &agentServiceClient{cc}
}

func (c *agentServiceClient) ProposeAction(ctx context.Context, in *ProposeActionRequest, opts ...grpc.CallOption) (*ProposeActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProposeActionResponse)
	err := c.cc.Invoke(ctx, AgentService_ProposeAction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agentServiceClient) ConfirmAction(ctx context.Context, in *ConfirmActionRequest, opts ...grpc.CallOption) (*ConfirmActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmActionResponse)
	err := c.cc.Invoke(ctx, AgentService_ConfirmAction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agentServiceClient) GetAgentEvent(ctx context.Context, in *GetAgentEventRequest, opts ...grpc.CallOption) (*GetAgentEventResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAgentEventResponse)
	err := c.cc.Invoke(ctx, AgentService_GetAgentEvent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agentServiceClient) ListAgentEvents(ctx context.Context, in *ListAgentEventsRequest, opts ...grpc.CallOption) (*ListAgentEventsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAgentEventsResponse)
	err := c.cc.Invoke(ctx, AgentService_ListAgentEvents_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AgentServiceServer is the server API for AgentService service.
// All implementations must embed UnimplementedAgentServiceServer
// for forward compatibility
type AgentServiceServer interface {
	ProposeAction(context.Context, *ProposeActionRequest) (*ProposeActionResponse, error)
	ConfirmAction(context.Context, *ConfirmActionRequest) (*ConfirmActionResponse, error)
	GetAgentEvent(context.Context, *GetAgentEventRequest) (*GetAgentEventResponse, error)
	ListAgentEvents(context.Context, *ListAgentEventsRequest) (*ListAgentEventsResponse, error)
	mustEmbedUnimplementedAgentServiceServer()
}

// UnimplementedAgentServiceServer must be embedded to have forward compatible implementations.
type UnimplementedAgentServiceServer struct {
}

func (UnimplementedAgentServiceServer) ProposeAction(context.Context, *ProposeActionRequest) (*ProposeActionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProposeAction not implemented")
}
func (UnimplementedAgentServiceServer) ConfirmAction(context.Context, *ConfirmActionRequest) (*ConfirmActionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmAction not implemented")
}
func (UnimplementedAgentServiceServer) GetAgentEvent(context.Context, *GetAgentEventRequest) (*GetAgentEventResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAgentEvent not implemented")
}
func (UnimplementedAgentServiceServer) ListAgentEvents(context.Context, *ListAgentEventsRequest) (*ListAgentEventsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAgentEvents not implemented")
}
func (UnimplementedAgentServiceServer) mustEmbedUnimplementedAgentServiceServer() {}

// UnsafeAgentServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AgentServiceServer will
// result in compilation errors.
type UnsafeAgentServiceServer interface {
	mustEmbedUnimplementedAgentServiceServer()
}

func RegisterAgentServiceServer(s grpc.ServiceRegistrar, srv AgentServiceServer) {
	s.RegisterService(&AgentService_ServiceDesc, srv)
}

func _AgentService_ProposeAction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProposeActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentServiceServer).ProposeAction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentService_ProposeAction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentServiceServer).ProposeAction(ctx, req.(*ProposeActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgentService_ConfirmAction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentServiceServer).ConfirmAction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentService_ConfirmAction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentServiceServer).ConfirmAction(ctx, req.(*ConfirmActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgentService_GetAgentEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAgentEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentServiceServer).GetAgentEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentService_GetAgentEvent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentServiceServer).GetAgentEvent(ctx, req.(*GetAgentEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgentService_ListAgentEvents_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAgentEventsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentServiceServer).ListAgentEvents(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentService_ListAgentEvents_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentServiceServer).ListAgentEvents(ctx, req.(*ListAgentEventsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AgentService_ServiceDesc is the grpc.ServiceDesc for AgentService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AgentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "agent.v1.AgentService",
	HandlerType: (*AgentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProposeAction",
			Handler:    _AgentService_ProposeAction_Handler,
		},
		{
			MethodName: "ConfirmAction",
			Handler:    _AgentService_ConfirmAction_Handler,
		},
		{
			MethodName: "GetAgentEvent",
			Handler:    _AgentService_GetAgentEvent_Handler,
		},
		{
			MethodName: "ListAgentEvents",
			Handler:    _AgentService_ListAgentEvents_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "agent/v1/agent.proto",
}
