// Package grpcweb serves browser grpc-web calls by relaying them to the
// native gRPC server.
package grpcweb

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "meeting-scheduler/api/meeting/v1"
)

const (
	maxBody = 4 << 20

	flagData       byte = 0x00
	flagCompressed byte = 0x01
	flagTrailer    byte = 0x80

	contentTypeProto = "application/grpc-web+proto"
	contentTypeText  = "application/grpc-web-text+proto"
)

var (
	errShortFrame      = errors.New("body too short")
	errIncompleteFrame = errors.New("incomplete frame")
	errCompressed      = errors.New("compressed frames are not supported")
)

// forwarded lists the request headers passed on as gRPC metadata.
var forwarded = []string{"authorization"}

type Bridge struct {
	cc    grpc.ClientConnInterface
	close func() error
	log   *slog.Logger
}

// Dial connects to the gRPC server at addr (e.g. "localhost:50051").
func Dial(addr string, log *slog.Logger) (*Bridge, error) {
	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("grpcweb dial: %w", err)
	}
	b := New(conn, log)
	b.close = conn.Close
	return b, nil
}

// New wraps an existing connection. Close is then a no-op.
func New(cc grpc.ClientConnInterface, log *slog.Logger) *Bridge {
	return &Bridge{cc: cc, close: func() error { return nil }, log: log.With("component", "grpcweb")}
}

func (b *Bridge) Close() error { return b.close() }

// Handler accepts binary (application/grpc-web) and base64
// (application/grpc-web-text) requests and answers in the same encoding.
func (b *Bridge) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cors(w.Header(), r.Header.Get("Origin"))

		switch {
		case r.Method == http.MethodOptions:
			w.WriteHeader(http.StatusOK)
			return
		case r.Method != http.MethodPost:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ct := r.Header.Get("Content-Type")
		if !strings.HasPrefix(ct, "application/grpc-web") {
			http.Error(w, "not grpc-web", http.StatusUnsupportedMediaType)
			return
		}

		out := reply{w: w, text: strings.HasPrefix(ct, "application/grpc-web-text")}
		b.relay(out, r)
	})
}

func cors(h http.Header, origin string) {
	if origin == "" {
		origin = "*"
	}
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Grpc-Web, X-User-Agent")
	h.Set("Access-Control-Expose-Headers", "Grpc-Status, Grpc-Message, Grpc-Status-Details-Bin")
	h.Set("Access-Control-Max-Age", "86400")
}

func (b *Bridge) relay(out reply, r *http.Request) {
	var src io.Reader = io.LimitReader(r.Body, maxBody)
	if out.text {
		src = base64.NewDecoder(base64.StdEncoding, src)
	}
	body, err := io.ReadAll(src)
	if err != nil {
		out.fail(codes.InvalidArgument, "read body failed")
		return
	}
	msg, err := readFrame(body)
	switch {
	case errors.Is(err, errCompressed):
		out.fail(codes.Unimplemented, err.Error())
		return
	case err != nil:
		out.fail(codes.InvalidArgument, err.Error())
		return
	}

	md := metadata.MD{}
	for _, key := range forwarded {
		if vals := r.Header.Values(key); len(vals) > 0 {
			md.Set(key, vals...)
		}
	}
	ctx := metadata.NewOutgoingContext(r.Context(), md)

	req, resp := payload(msg), payload(nil)
	if err := b.cc.Invoke(ctx, r.URL.Path, &req, &resp, grpc.ForceCodec(pb.Codec{})); err != nil {
		st := status.Convert(err)
		b.log.Info("grpc-web call failed", "method", r.URL.Path, "code", st.Code().String(), "msg", st.Message())
		out.fail(st.Code(), st.Message())
		return
	}
	b.log.Debug("grpc-web call", "method", r.URL.Path)
	out.ok(resp)
}

// readFrame returns the message of the first data frame in body.
func readFrame(body []byte) ([]byte, error) {
	if len(body) < 5 {
		return nil, errShortFrame
	}
	if body[0]&flagCompressed != 0 {
		return nil, errCompressed
	}
	n := binary.BigEndian.Uint32(body[1:5])
	if uint64(n)+5 > uint64(len(body)) {
		return nil, errIncompleteFrame
	}
	return body[5 : 5+n], nil
}

// payload is an already encoded message relayed through pb.Codec as is.
type payload []byte

func (p payload) AppendWire(b []byte) []byte { return append(b, p...) }

func (p *payload) UnmarshalWire(b []byte) error {
	*p = append((*p)[:0], b...)
	return nil
}

func frame(flag byte, data []byte) []byte {
	f := make([]byte, 5, 5+len(data))
	f[0] = flag
	binary.BigEndian.PutUint32(f[1:5], uint32(len(data)))
	return append(f, data...)
}

// reply writes grpc-web responses. gRPC errors travel in the trailer frame
// with HTTP status 200.
type reply struct {
	w    http.ResponseWriter
	text bool
}

func (o reply) ok(data []byte) {
	o.write(frame(flagData, data), frame(flagTrailer, []byte("grpc-status:0\r\n")))
}

func (o reply) fail(code codes.Code, msg string) {
	trailer := fmt.Sprintf("grpc-status:%d\r\ngrpc-message:%s\r\n", code, encodeMessage(msg))
	o.write(frame(flagTrailer, []byte(trailer)))
}

func (o reply) write(frames ...[]byte) {
	body := bytes.Join(frames, nil)
	ct := contentTypeProto
	if o.text {
		ct = contentTypeText
		body = []byte(base64.StdEncoding.EncodeToString(body))
	}
	o.w.Header().Set("Content-Type", ct)
	o.w.WriteHeader(http.StatusOK)
	o.w.Write(body)
}

// encodeMessage percent-encodes grpc-message: bytes outside printable ASCII
// and '%' itself.
func encodeMessage(msg string) string {
	var sb strings.Builder
	for i := 0; i < len(msg); i++ {
		c := msg[i]
		if c < 0x20 || c > 0x7e || c == '%' {
			fmt.Fprintf(&sb, "%%%02X", c)
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
