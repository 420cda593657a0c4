package settlement

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crossmart/goapi/domain"
)

func TestPurchasePayloadRoundtrip(t *testing.T) {
	in := &PurchasePayload{
		Collection: "0x9A38dec0590abc8c883d72e52391090e948Ddf12",
		TokenId:    "42",
		Recipient:  "0xC37C41601bc88C91b6569c701f08D37fa0f565F0",
	}

	data, err := in.Encode()
	require.NoError(t, err)
	// (address, uint256, address), one word each
	require.Len(t, data, 96)

	out, err := DecodePurchasePayload(data)
	require.NoError(t, err)

	// addresses normalize to lower case on decode
	require.Equal(t, domain.Address("0x9a38dec0590abc8c883d72e52391090e948ddf12"), out.Collection)
	require.Equal(t, domain.TokenId("42"), out.TokenId)
	require.Equal(t, domain.Address("0xc37c41601bc88c91b6569c701f08d37fa0f565f0"), out.Recipient)
}

func TestDecodePurchasePayloadRejectsGarbage(t *testing.T) {
	_, err := DecodePurchasePayload([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)

	_, err = DecodePurchasePayload(nil)
	require.Error(t, err)
}

func TestEncodeRejectsBadTokenId(t *testing.T) {
	in := &PurchasePayload{
		Collection: "0x9a38dec0590abc8c883d72e52391090e948ddf12",
		TokenId:    "not-a-number",
		Recipient:  "0xc37c41601bc88c91b6569c701f08d37fa0f565f0",
	}
	_, err := in.Encode()
	require.Error(t, err)
}
