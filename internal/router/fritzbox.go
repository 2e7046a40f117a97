package router

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
)

var ErrLoginFailed = errors.New("router login failed")

// emptySID is what login_sid.lua reports while no session is open.
const emptySID = "0000000000000000"

type sessionInfo struct {
	SID       string `xml:"SID"`
	Challenge string `xml:"Challenge"`
}

// FritzBox reboots an AVM FritzBox through its web interface.
type FritzBox struct {
	httpClient   *http.Client
	baseURL      string
	passwordFile string
	logger       *slog.Logger
}

func NewFritzBox(baseURL, passwordFile string, timeout time.Duration, logger *slog.Logger) *FritzBox {
	return &FritzBox{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		passwordFile: passwordFile,
		logger:       logger.With("component", "router"),
	}
}

// Reboot logs in and asks the router to restart.
func (f *FritzBox) Reboot(ctx context.Context) error {
	password, err := f.password()
	if err != nil {
		return err
	}

	f.logger.Debug("logging in to fritzbox")
	sid, err := f.login(ctx, password)
	if err != nil {
		return err
	}

	form := url.Values{"sid": {sid}, "reboot": {"1"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/system/reboot.lua", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request reboot: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request reboot: unexpected status: %d", resp.StatusCode)
	}

	f.logger.Warn("router is restarting now")
	return nil
}

func (f *FritzBox) password() (string, error) {
	data, err := os.ReadFile(f.passwordFile)
	if err != nil {
		return "", fmt.Errorf("read router password: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *FritzBox) login(ctx context.Context, password string) (string, error) {
	info, err := f.session(ctx, nil)
	if err != nil {
		return "", err
	}
	if info.SID != emptySID {
		return info.SID, nil
	}

	answer, err := response(info.Challenge, password)
	if err != nil {
		return "", err
	}

	info, err = f.session(ctx, url.Values{"username": {""}, "response": {answer}})
	if err != nil {
		return "", err
	}
	if info.SID == "" || info.SID == emptySID {
		return "", ErrLoginFailed
	}
	return info.SID, nil
}

func (f *FritzBox) session(ctx context.Context, params url.Values) (*sessionInfo, error) {
	endpoint := f.baseURL + "/login_sid.lua"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status: %d", ErrLoginFailed, resp.StatusCode)
	}

	var info sessionInfo
	if err := xml.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode session info: %w", err)
	}
	return &info, nil
}

// response answers a login challenge: the MD5 of "challenge-password"
// encoded as UTF-16LE, prefixed with the challenge.
func response(challenge, password string) (string, error) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().String(challenge + "-" + password)
	if err != nil {
		return "", fmt.Errorf("encode challenge: %w", err)
	}
	sum := md5.Sum([]byte(encoded))
	return challenge + "-" + hex.EncodeToString(sum[:]), nil
}
