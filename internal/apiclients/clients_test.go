package apiclients_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prysmaticlabs/prysm/v5/api/server/structs"
	"github.com/prysmaticlabs/prysm/v5/consensus-types/primitives"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/4rgon4ut/StakingBrain/internal/apiclients"
	"github.com/4rgon4ut/StakingBrain/internal/model"
)

var (
	pubkeyA    = "0x" + strings.Repeat("aa", model.PubkeyLength)
	bareA      = strings.Repeat("aa", model.PubkeyLength)
	addrA      = "0x52908400098527886E0F7030069857D2E4169EE7"
	signatureA = "0x" + strings.Repeat("ab", 96)
)

// recorded captures the last request a test server received.
type recorded struct {
	method string
	path   string
	host   string
	auth   string
	body   []byte
}

// newServer starts a test server answering every request with status and body.
func newServer(t *testing.T, status int, body string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		*rec = recorded{
			method: r.Method,
			path:   r.URL.Path,
			host:   r.Host,
			auth:   r.Header.Get("Authorization"),
			body:   raw,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestNewStandardAPIRejectsBadURL(t *testing.T) {
	_, err := apiclients.NewStandardAPI(zerolog.Nop(), "test", "not a url")
	require.Error(t, err)

	_, err = apiclients.NewSigner(zerolog.Nop(), "")
	require.Error(t, err)
}

// TestHTTPErrorCarriesStatusAndMessage verifies non-2xx answers become HTTPError.
func TestHTTPErrorCarriesStatusAndMessage(t *testing.T) {
	srv, _ := newServer(t, http.StatusUnauthorized, `{"message":"bad token"}`)
	v, err := apiclients.NewValidator(zerolog.Nop(), srv.URL)
	require.NoError(t, err)

	_, err = v.GetRemoteKeys(context.Background())
	require.Error(t, err)
	require.True(t, apiclients.IsStatus(err, http.StatusUnauthorized))
	require.Contains(t, err.Error(), "bad token")
}

func TestSignerImportKeystores(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"data":[{"status":"imported"},{"status":"error","message":"bad password"}]}`)
	s, err := apiclients.NewSigner(zerolog.Nop(), srv.URL, apiclients.WithHost("web3signer.local"))
	require.NoError(t, err)

	resp, err := s.ImportKeystores(context.Background(), model.ImportKeystoresRequest{
		Keystores: []string{"{}", "{}"},
		Passwords: []string{"p1", "p2"},
	})
	require.NoError(t, err)
	require.Equal(t, []model.KeystoreStatus{
		{Status: model.StatusImported},
		{Status: model.StatusError, Message: "bad password"},
	}, resp.Data)

	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, model.KeystoresPath, rec.path)
	require.Equal(t, "web3signer.local", rec.host, "host header override should be applied")

	var sent model.ImportKeystoresRequest
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	require.Equal(t, []string{"p1", "p2"}, sent.Passwords)
	require.Empty(t, sent.SlashingProtection)
}

// TestSignerDeleteKeystoresPrefixesPubkeys verifies pubkeys are sent 0x prefixed.
func TestSignerDeleteKeystoresPrefixesPubkeys(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"data":[{"status":"deleted"}],"slashing_protection":"{\"metadata\":{}}"}`)
	s, err := apiclients.NewSigner(zerolog.Nop(), srv.URL)
	require.NoError(t, err)

	resp, err := s.DeleteKeystores(context.Background(), model.DeleteKeystoresRequest{Pubkeys: []string{bareA}})
	require.NoError(t, err)
	require.Equal(t, model.StatusDeleted, resp.Data[0].Status)
	require.Equal(t, `{"metadata":{}}`, resp.SlashingProtection)

	require.Equal(t, http.MethodDelete, rec.method)
	var sent model.DeleteKeystoresRequest
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	require.Equal(t, []string{pubkeyA}, sent.Pubkeys)
}

func TestSignerSignVoluntaryExit(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"signature":"`+signatureA+`"}`)
	s, err := apiclients.NewSigner(zerolog.Nop(), srv.URL)
	require.NoError(t, err)

	sig, err := s.SignVoluntaryExit(context.Background(), bareA, model.VoluntaryExitSigningRequest{
		ForkInfo: model.ForkInfo{
			Fork:                  &structs.Fork{PreviousVersion: "0x03000000", CurrentVersion: "0x04000000", Epoch: "269568"},
			GenesisValidatorsRoot: "0x4b363db94e286120d76eb905340fdd4e54bfe9f06bf33ff6cf5ad27f511bfe95",
		},
		VoluntaryExit: &structs.VoluntaryExit{Epoch: "300000", ValidatorIndex: "42"},
	})
	require.NoError(t, err)
	require.Equal(t, signatureA, sig)
	require.Equal(t, "/api/v1/eth2/sign/"+pubkeyA, rec.path)

	var sent model.VoluntaryExitSigningRequest
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	require.Equal(t, model.SigningTypeVoluntaryExit, sent.Type)
	require.Equal(t, "42", sent.VoluntaryExit.ValidatorIndex)
	require.NotEmpty(t, sent.ForkInfo.GenesisValidatorsRoot)
}

func TestSignerSignVoluntaryExitEmptySignature(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{}`)
	s, err := apiclients.NewSigner(zerolog.Nop(), srv.URL)
	require.NoError(t, err)

	_, err = s.SignVoluntaryExit(context.Background(), pubkeyA, model.VoluntaryExitSigningRequest{})
	require.ErrorContains(t, err, "empty signature")
}

func TestSignerListAndUpcheck(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"data":[{"validating_pubkey":"`+pubkeyA+`"}]}`)
	s, err := apiclients.NewSigner(zerolog.Nop(), srv.URL)
	require.NoError(t, err)

	keystores, err := s.ListKeystores(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Keystore{{ValidatingPubkey: pubkeyA}}, keystores)

	require.NoError(t, s.Upcheck(context.Background()))
	require.Equal(t, model.UpcheckPath, rec.path)
}

func TestValidatorRemoteKeys(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"data":[{"status":"imported"}]}`)
	v, err := apiclients.NewValidator(zerolog.Nop(), srv.URL, apiclients.WithBearerToken("secret"))
	require.NoError(t, err)

	statuses, err := v.PostRemoteKeys(context.Background(), []model.RemoteKey{{Pubkey: bareA, URL: "http://signer:9000"}})
	require.NoError(t, err)
	require.Equal(t, model.StatusImported, statuses[0].Status)
	require.Equal(t, "Bearer secret", rec.auth)

	var posted model.PostRemoteKeysRequest
	require.NoError(t, json.Unmarshal(rec.body, &posted))
	require.Equal(t, []model.RemoteKey{{Pubkey: pubkeyA, URL: "http://signer:9000"}}, posted.RemoteKeys)

	_, err = v.DeleteRemoteKeys(context.Background(), []string{bareA})
	require.NoError(t, err)
	require.Equal(t, http.MethodDelete, rec.method)
	var deleted model.DeleteRemoteKeysRequest
	require.NoError(t, json.Unmarshal(rec.body, &deleted))
	require.Equal(t, []string{pubkeyA}, deleted.Pubkeys)
}

// TestValidatorFeeRecipientPrefixesPubkey verifies the pubkey path segment always carries 0x.
func TestValidatorFeeRecipientPrefixesPubkey(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"data":{"pubkey":"`+pubkeyA+`","ethaddress":"`+addrA+`"}}`)
	v, err := apiclients.NewValidator(zerolog.Nop(), srv.URL)
	require.NoError(t, err)

	addr, err := v.GetFeeRecipient(context.Background(), bareA)
	require.NoError(t, err)
	require.Equal(t, addrA, addr)
	require.Equal(t, "/eth/v1/validator/"+pubkeyA+"/feerecipient", rec.path)

	require.NoError(t, v.SetFeeRecipient(context.Background(), bareA, addrA))
	require.Equal(t, http.MethodPost, rec.method)
	require.JSONEq(t, `{"ethaddress":"`+addrA+`"}`, string(rec.body))

	require.NoError(t, v.DeleteFeeRecipient(context.Background(), pubkeyA))
	require.Equal(t, http.MethodDelete, rec.method)
	require.Equal(t, "/eth/v1/validator/"+pubkeyA+"/feerecipient", rec.path)
}

func TestBeaconGetCurrentEpoch(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"data":{"root":"0x00","canonical":true,"header":{"message":{"slot":"6400","proposer_index":"1"},"signature":"0x00"}}}`)
	b, err := apiclients.NewBeacon(zerolog.Nop(), srv.URL, 0)
	require.NoError(t, err)

	epoch, err := b.GetCurrentEpoch(context.Background())
	require.NoError(t, err)
	require.Equal(t, primitives.Epoch(200), epoch, "mainnet preset has 32 slots per epoch")
	require.Equal(t, model.HeadHeaderPath, rec.path)

	gnosis, err := apiclients.NewBeacon(zerolog.Nop(), srv.URL, 16)
	require.NoError(t, err)
	epoch, err = gnosis.GetCurrentEpoch(context.Background())
	require.NoError(t, err)
	require.Equal(t, primitives.Epoch(400), epoch)
}

func TestBeaconForkGenesisValidator(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /eth/v1/beacon/states/head/fork", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"previous_version":"0x03000000","current_version":"0x04000000","epoch":"269568"}}`))
	})
	mux.HandleFunc("GET /eth/v1/beacon/genesis", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"genesis_time":"1606824023","genesis_validators_root":"0x4b36","genesis_fork_version":"0x00000000"}}`))
	})
	var validatorID string
	mux.HandleFunc("GET /eth/v1/beacon/states/head/validators/{id}", func(w http.ResponseWriter, r *http.Request) {
		validatorID = r.PathValue("id")
		_, _ = w.Write([]byte(`{"data":{"index":"42","balance":"32000000000","status":"active_ongoing"}}`))
	})
	var exit structs.SignedVoluntaryExit
	mux.HandleFunc("POST /eth/v1/beacon/pool/voluntary_exits", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&exit)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	b, err := apiclients.NewBeacon(zerolog.Nop(), srv.URL, 0)
	require.NoError(t, err)
	ctx := context.Background()

	fork, err := b.GetForkFromState(ctx, model.StateHead)
	require.NoError(t, err)
	require.Equal(t, "0x04000000", fork.CurrentVersion)

	genesis, err := b.GetGenesis(ctx)
	require.NoError(t, err)
	require.Equal(t, "0x4b36", genesis.GenesisValidatorsRoot)

	validator, err := b.GetValidatorFromState(ctx, model.StateHead, bareA)
	require.NoError(t, err)
	require.Equal(t, "42", validator.Index)
	require.Equal(t, pubkeyA, validatorID, "validator lookup should use the 0x prefixed pubkey")

	require.NoError(t, b.PostVoluntaryExits(ctx, &structs.SignedVoluntaryExit{
		Message:   &structs.VoluntaryExit{Epoch: "200", ValidatorIndex: "42"},
		Signature: signatureA,
	}))
	require.NotNil(t, exit.Message, "voluntary exit body should be posted")
	require.Equal(t, "42", exit.Message.ValidatorIndex)
	require.Equal(t, signatureA, exit.Signature)
}

func TestBeaconEmptyResponse(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{}`)
	b, err := apiclients.NewBeacon(zerolog.Nop(), srv.URL, 0)
	require.NoError(t, err)

	_, err = b.GetForkFromState(context.Background(), model.StateHead)
	require.ErrorContains(t, err, "empty response")
	_, err = b.GetCurrentEpoch(context.Background())
	require.ErrorContains(t, err, "empty response")
}
