// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, accountID string, passphrase []byte) PasswordFile {
	t.Helper()

	cstate, m1, err := ClientRegisterStart(passphrase)
	require.NoError(t, err)

	sstate, m2, err := ServerRegisterStart(ServerSetup{ServerID: "srv-1"}, accountID, m1)
	require.NoError(t, err)

	m3, err := ClientRegisterFinish(passphrase, cstate, m2)
	require.NoError(t, err)

	file, err := ServerRegisterFinish(sstate, m3)
	require.NoError(t, err)

	return file
}

func TestRegister_ProducesPasswordFile(t *testing.T) {
	file := register(t, "alice", []byte("correct horse battery staple"))

	assert.NotEmpty(t, file.Ks)
	assert.NotEmpty(t, file.Ps)
	assert.NotEmpty(t, file.Pu)
	assert.NotEmpty(t, file.Tag)
	assert.NotEmpty(t, file.Ciphertext)
}

func TestLogin_DerivesMatchingSessionKey(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	file := register(t, "alice", passphrase)

	cstate, m1, err := ClientLoginStart(passphrase)
	require.NoError(t, err)

	sstate, m2, err := ServerLoginStart(file, m1)
	require.NoError(t, err)

	m3, clientKey, err := ClientLoginFinish(passphrase, cstate, m2)
	require.NoError(t, err)

	err = ServerLoginFinish(sstate, m3)
	require.NoError(t, err)

	assert.Equal(t, sstate.SessionKey, clientKey.Expose())
}

func TestLogin_WrongPassphraseFailsAtClientFinish(t *testing.T) {
	file := register(t, "alice", []byte("correct horse battery staple"))

	cstate, m1, err := ClientLoginStart([]byte("wrong passphrase entirely"))
	require.NoError(t, err)

	_, m2, err := ServerLoginStart(file, m1)
	require.NoError(t, err)

	_, _, err = ClientLoginFinish([]byte("wrong passphrase entirely"), cstate, m2)
	assert.Error(t, err)
}

func TestLogin_TamperedClientConfirmationFailsServerFinish(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	file := register(t, "alice", passphrase)

	cstate, m1, err := ClientLoginStart(passphrase)
	require.NoError(t, err)

	sstate, m2, err := ServerLoginStart(file, m1)
	require.NoError(t, err)

	m3, _, err := ClientLoginFinish(passphrase, cstate, m2)
	require.NoError(t, err)

	tampered := append([]byte(nil), m3...)
	tampered[len(tampered)-1] ^= 0xFF

	err = ServerLoginFinish(sstate, tampered)
	assert.Error(t, err)
}

func TestRegisterFinish_RejectsGarbageMessage(t *testing.T) {
	cstate, m1, err := ClientRegisterStart([]byte("p"))
	require.NoError(t, err)
	sstate, _, err := ServerRegisterStart(ServerSetup{}, "bob", m1)
	require.NoError(t, err)

	_, err = ServerRegisterFinish(sstate, Message("not a valid gob stream"))
	assert.ErrorIs(t, err, ErrInvalidMessage)
}
