// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/voyager/models"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "voyager.v1.Voyager"

// Full method names, as seen by interceptors in grpc.UnaryServerInfo.
const (
	MethodRegister   = "/" + ServiceName + "/Register"
	MethodLogin      = "/" + ServiceName + "/Login"
	MethodGetUser    = "/" + ServiceName + "/GetUser"
	MethodListPosts  = "/" + ServiceName + "/ListPosts"
	MethodGetPost    = "/" + ServiceName + "/GetPost"
	MethodCreatePost = "/" + ServiceName + "/CreatePost"
	MethodUpdatePost = "/" + ServiceName + "/UpdatePost"
	MethodDeletePost = "/" + ServiceName + "/DeletePost"
)

// VoyagerServer is the server API of the Voyager service.
type VoyagerServer interface {
	Register(context.Context, *models.RegisterRequest) (*models.AuthResult, error)
	Login(context.Context, *models.LoginRequest) (*models.AuthResult, error)
	GetUser(context.Context, *models.UserIDRequest) (*models.UserProfile, error)
	ListPosts(context.Context, *models.ListPostsRequest) (*models.PostList, error)
	GetPost(context.Context, *models.PostIDRequest) (*models.Post, error)
	CreatePost(context.Context, *models.CreatePostRequest) (*models.Post, error)
	UpdatePost(context.Context, *models.UpdatePostRequest) (*models.Post, error)
	DeletePost(context.Context, *models.PostIDRequest) (*models.Empty, error)
}

// ServiceDesc describes the Voyager service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VoyagerServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodRegister, VoyagerServer.Register),
		unaryMethod(MethodLogin, VoyagerServer.Login),
		unaryMethod(MethodGetUser, VoyagerServer.GetUser),
		unaryMethod(MethodListPosts, VoyagerServer.ListPosts),
		unaryMethod(MethodGetPost, VoyagerServer.GetPost),
		unaryMethod(MethodCreatePost, VoyagerServer.CreatePost),
		unaryMethod(MethodUpdatePost, VoyagerServer.UpdatePost),
		unaryMethod(MethodDeletePost, VoyagerServer.DeletePost),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "voyager/v1/voyager.proto",
}

// RegisterVoyagerServer registers srv on s.
func RegisterVoyagerServer(s grpc.ServiceRegistrar, srv VoyagerServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unaryMethod builds the method descriptor for fullMethod. The request is
// decoded into a fresh Req and passed through the server interceptor chain.
func unaryMethod[Req, Resp any](fullMethod string, call func(VoyagerServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: fullMethod[len(ServiceName)+2:],
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(VoyagerServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(VoyagerServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
