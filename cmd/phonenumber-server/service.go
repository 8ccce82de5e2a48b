// Copyright (c) 2025 A Bit of Help, Inc.

package main

import (
	"context"
	"fmt"

	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/errors"
	"github.com/abitofhelp/phonenumber/format"
	"github.com/abitofhelp/phonenumber/logging"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/parse"
	"github.com/abitofhelp/phonenumber/scan"
	"github.com/abitofhelp/phonenumber/validation"
	"github.com/abitofhelp/phonenumber/valueobject/identification"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// wireNumber is the over-the-wire shape of a parsed number: the public
// surface's Number (§6.4), minus anything the JSON codec can't carry
// unchanged.
type wireNumber struct {
	CallingCode    int    `json:"calling_code"`
	NationalNumber uint64 `json:"national_number"`
	Extension      string `json:"extension,omitempty"`
}

func toWireNumber(n number.Number) wireNumber {
	return wireNumber{CallingCode: n.CallingCode, NationalNumber: n.NationalNumber, Extension: n.Extension}
}

func fromWireNumber(w wireNumber) number.Number {
	return number.Number{CallingCode: w.CallingCode, NationalNumber: w.NationalNumber, Extension: w.Extension}
}

type parseRequest struct {
	Input         string `json:"input" validate:"required"`
	DefaultRegion string `json:"default_region"`
}

type parseResponse struct {
	Number wireNumber `json:"number"`
}

type formatRequest struct {
	Number wireNumber `json:"number" validate:"required"`
	Style  string     `json:"style" validate:"required,oneof=E164 INTERNATIONAL NATIONAL RFC3966"`
}

type formatResponse struct {
	Formatted string `json:"formatted"`
}

type isValidRequest struct {
	Number wireNumber `json:"number" validate:"required"`
}

type isValidResponse struct {
	Valid bool `json:"valid"`
}

type findNumbersRequest struct {
	Text          string `json:"text" validate:"required"`
	DefaultRegion string `json:"default_region"`
	Leniency      string `json:"leniency" validate:"required,oneof=POSSIBLE VALID STRICT_GROUPING EXACTLY_SAME_GROUPING"`
}

type foundMatch struct {
	RawString string     `json:"raw_string"`
	Number    wireNumber `json:"number"`
}

type findNumbersResponse struct {
	Matches []foundMatch `json:"matches"`
}

// phonenumberService is the thin gRPC facade over the core packages (§6.4,
// DESIGN.md "DOMAIN STACK"). It holds no state of its own beyond the
// collaborators every other entry point also constructs.
type phonenumberService struct {
	parser     *parse.Parser
	classifier *classify.Classifier
	formatter  *format.Formatter
	scanner    *scan.Scanner
	logger     *logging.ContextLogger
}

func (s *phonenumberService) requestID(ctx context.Context) (context.Context, string) {
	id := identification.GenerateID()
	return ctx, id.String()
}

func (s *phonenumberService) Parse(ctx context.Context, req *parseRequest) (*parseResponse, error) {
	ctx, reqID := s.requestID(ctx)
	if errs := validation.Struct(req); len(errs) > 0 {
		return nil, status.Error(codes.InvalidArgument, validation.Summarize(errs))
	}
	n, err := s.parser.Parse(req.Input, req.DefaultRegion, parse.Options{})
	if err != nil {
		s.logger.Info(ctx, "parse failed", zap.String("request_id", reqID), zap.Error(err))
		code, _ := errors.CodeOf(err)
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("%s: %s", code, err.Error()))
	}
	return &parseResponse{Number: toWireNumber(n)}, nil
}

func (s *phonenumberService) Format(ctx context.Context, req *formatRequest) (*formatResponse, error) {
	if errs := validation.Struct(req); len(errs) > 0 {
		return nil, status.Error(codes.InvalidArgument, validation.Summarize(errs))
	}
	style, ok := parseStyle(req.Style)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown style %q", req.Style)
	}
	formatted := s.formatter.Format(fromWireNumber(req.Number), style)
	return &formatResponse{Formatted: formatted}, nil
}

func (s *phonenumberService) IsValidNumber(ctx context.Context, req *isValidRequest) (*isValidResponse, error) {
	if errs := validation.Struct(req); len(errs) > 0 {
		return nil, status.Error(codes.InvalidArgument, validation.Summarize(errs))
	}
	return &isValidResponse{Valid: s.classifier.IsValid(fromWireNumber(req.Number))}, nil
}

func (s *phonenumberService) FindNumbers(ctx context.Context, req *findNumbersRequest) (*findNumbersResponse, error) {
	if errs := validation.Struct(req); len(errs) > 0 {
		return nil, status.Error(codes.InvalidArgument, validation.Summarize(errs))
	}
	leniency, ok := parseLeniency(req.Leniency)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown leniency %q", req.Leniency)
	}
	it := s.scanner.FindNumbers(req.Text, req.DefaultRegion, leniency, 0)
	var matches []foundMatch
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		matches = append(matches, foundMatch{RawString: m.RawString, Number: toWireNumber(m.Number)})
	}
	return &findNumbersResponse{Matches: matches}, nil
}

func parseStyle(s string) (format.Style, bool) {
	switch s {
	case "E164":
		return format.E164, true
	case "INTERNATIONAL":
		return format.International, true
	case "NATIONAL":
		return format.National, true
	case "RFC3966":
		return format.RFC3966, true
	default:
		return 0, false
	}
}

func parseLeniency(s string) (scan.Leniency, bool) {
	switch s {
	case "POSSIBLE":
		return scan.Possible, true
	case "VALID":
		return scan.Valid, true
	case "STRICT_GROUPING":
		return scan.StrictGrouping, true
	case "EXACTLY_SAME_GROUPING":
		return scan.ExactlySameGrouping, true
	default:
		return 0, false
	}
}

// serviceDesc is the hand-written equivalent of what protoc-gen-go-grpc
// would generate from a .proto file; it wires each RPC name to a unary
// handler that decodes through grpc's configured codec (jsonCodec here)
// rather than requiring generated message types.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: "phonenumber.PhoneNumberService",
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Parse", Handler: parseHandler},
		{MethodName: "Format", Handler: formatHandler},
		{MethodName: "IsValidNumber", Handler: isValidNumberHandler},
		{MethodName: "FindNumbers", Handler: findNumbersHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "phonenumber.proto",
}

func parseHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(parseRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	svc := srv.(*phonenumberService)
	if interceptor == nil {
		return svc.Parse(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: svc, FullMethod: "/phonenumber.PhoneNumberService/Parse"}
	handler := func(ctx context.Context, req any) (any, error) {
		return svc.Parse(ctx, req.(*parseRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func formatHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(formatRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	svc := srv.(*phonenumberService)
	if interceptor == nil {
		return svc.Format(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: svc, FullMethod: "/phonenumber.PhoneNumberService/Format"}
	handler := func(ctx context.Context, req any) (any, error) {
		return svc.Format(ctx, req.(*formatRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func isValidNumberHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(isValidRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	svc := srv.(*phonenumberService)
	if interceptor == nil {
		return svc.IsValidNumber(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: svc, FullMethod: "/phonenumber.PhoneNumberService/IsValidNumber"}
	handler := func(ctx context.Context, req any) (any, error) {
		return svc.IsValidNumber(ctx, req.(*isValidRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func findNumbersHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(findNumbersRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	svc := srv.(*phonenumberService)
	if interceptor == nil {
		return svc.FindNumbers(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: svc, FullMethod: "/phonenumber.PhoneNumberService/FindNumbers"}
	handler := func(ctx context.Context, req any) (any, error) {
		return svc.FindNumbers(ctx, req.(*findNumbersRequest))
	}
	return interceptor(ctx, req, info, handler)
}
