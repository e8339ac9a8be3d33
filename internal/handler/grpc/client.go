// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/voyager/models"
)

// VoyagerClient is the client API of the Voyager service. Every call uses the
// JSON codec.
type VoyagerClient struct {
	cc grpc.ClientConnInterface
}

func NewVoyagerClient(cc grpc.ClientConnInterface) *VoyagerClient {
	return &VoyagerClient{cc: cc}
}

func (c *VoyagerClient) Register(ctx context.Context, in *models.RegisterRequest, opts ...grpc.CallOption) (*models.AuthResult, error) {
	out := new(models.AuthResult)
	if err := c.invoke(ctx, MethodRegister, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VoyagerClient) Login(ctx context.Context, in *models.LoginRequest, opts ...grpc.CallOption) (*models.AuthResult, error) {
	out := new(models.AuthResult)
	if err := c.invoke(ctx, MethodLogin, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VoyagerClient) GetUser(ctx context.Context, in *models.UserIDRequest, opts ...grpc.CallOption) (*models.UserProfile, error) {
	out := new(models.UserProfile)
	if err := c.invoke(ctx, MethodGetUser, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VoyagerClient) ListPosts(ctx context.Context, in *models.ListPostsRequest, opts ...grpc.CallOption) (*models.PostList, error) {
	out := new(models.PostList)
	if err := c.invoke(ctx, MethodListPosts, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VoyagerClient) GetPost(ctx context.Context, in *models.PostIDRequest, opts ...grpc.CallOption) (*models.Post, error) {
	out := new(models.Post)
	if err := c.invoke(ctx, MethodGetPost, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VoyagerClient) CreatePost(ctx context.Context, in *models.CreatePostRequest, opts ...grpc.CallOption) (*models.Post, error) {
	out := new(models.Post)
	if err := c.invoke(ctx, MethodCreatePost, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VoyagerClient) UpdatePost(ctx context.Context, in *models.UpdatePostRequest, opts ...grpc.CallOption) (*models.Post, error) {
	out := new(models.Post)
	if err := c.invoke(ctx, MethodUpdatePost, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VoyagerClient) DeletePost(ctx context.Context, in *models.PostIDRequest, opts ...grpc.CallOption) (*models.Empty, error) {
	out := new(models.Empty)
	if err := c.invoke(ctx, MethodDeletePost, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VoyagerClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}
