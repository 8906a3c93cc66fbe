package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/internal/session"
)

type apiResponse struct {
	status int
	header http.Header
	body   map[string]any
}

func call(method, path, token string, body any) apiResponse {
	GinkgoHelper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, apiSrv.URL+path, reader)
	Expect(err).NotTo(HaveOccurred())
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(session.HeaderContextToken, token)
	}

	resp, err := apiSrv.Client().Do(req)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()

	out := apiResponse{status: resp.StatusCode, header: resp.Header}
	raw, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	if len(raw) > 0 && resp.Header.Get("Content-Type") == "application/json" {
		Expect(json.Unmarshal(raw, &out.body)).To(Succeed())
	}
	return out
}

var _ = Describe("Health", func() {
	It("answers SERVING", func() {
		resp, err := apiSrv.Client().Get(apiSrv.URL + "/health")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		raw, _ := io.ReadAll(resp.Body)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(string(raw)).To(Equal("SERVING"))
	})
})

var _ = Describe("GET /express/v1/sdk", func() {
	It("loads the SDK script once for every caller", func() {
		first := call(http.MethodGet, "/express/v1/sdk?locale=de-DE", "tok-sdk", nil)
		Expect(first.status).To(Equal(http.StatusOK))
		Expect(first.body).To(HaveKeyWithValue("client_id", clientID))
		Expect(first.body).To(HaveKeyWithValue("payment_method_id", expressMethodID))
		Expect(first.body).To(HaveKeyWithValue("state", string(model.ScriptLoaded)))
		Expect(first.body["script_url"]).To(HaveSuffix(
			"/sdk/js?client-id=test-client-id&components=marks%2Cbuttons%2Cmessages" +
				"&locale=de_DE&currency=EUR&intent=capture&commit=false",
		))

		second := call(http.MethodGet, "/express/v1/sdk?locale=en-GB", "tok-sdk-2", nil)
		Expect(second.status).To(Equal(http.StatusOK))
		Expect(second.body["script_url"]).To(Equal(first.body["script_url"]))
		Expect(scriptHits.Load()).To(Equal(int32(1)))
	})
})

var _ = Describe("POST /express/v1/create-order", func() {
	It("collapses the cart to one unit of the product on product pages", func() {
		resp := call(http.MethodPost, "/express/v1/create-order", "tok-1", map[string]any{
			"is_product_page": true,
			"product_id":      "prod-42",
		})

		Expect(resp.status).To(Equal(http.StatusOK))
		Expect(resp.body).To(HaveKeyWithValue("token", "PAYPAL-ORDER-1"))
		Expect(resp.header.Get(session.HeaderContextToken)).To(Equal("tok-1"))

		st := store.snapshot()
		Expect(st.paymentMethodID).To(Equal(expressMethodID))
		Expect(st.cart).To(Equal([]lineItem{
			{ID: "prod-42", ReferencedID: "prod-42", Type: model.LineItemTypeProduct, Quantity: 1},
		}))
		Expect(st.createOrderCalls).To(Equal(1))
	})

	It("leaves the cart untouched outside product pages", func() {
		resp := call(http.MethodPost, "/express/v1/create-order", "tok-2", map[string]any{
			"is_product_page": false,
		})

		Expect(resp.status).To(Equal(http.StatusOK))
		Expect(store.snapshot().cart).To(HaveLen(1))
		Expect(store.snapshot().cart[0].ID).To(Equal("other"))
	})

	It("reports one localized notification when the backend fails", func() {
		store.update(func(st *storeState) { st.failCreateOrder = true })

		resp := call(http.MethodPost, "/express/v1/create-order?locale=de-DE", "tok-3", map[string]any{})

		Expect(resp.status).To(Equal(http.StatusBadGateway))
		Expect(resp.body).To(HaveKeyWithValue("code", BeNumerically("==", http.StatusBadGateway)))
		Expect(resp.body["notifications"]).To(HaveLen(1))
		Expect(resp.body["notifications"]).To(ContainElement(SatisfyAll(
			HaveKeyWithValue("type", "danger"),
			HaveKeyWithValue("message", ContainSubstring("Fehler")),
		)))
	})

	It("rejects a product page request without product id", func() {
		resp := call(http.MethodPost, "/express/v1/create-order", "tok-4", map[string]any{
			"is_product_page": true,
		})

		Expect(resp.status).To(Equal(http.StatusBadRequest))
		Expect(resp.body["notifications"]).To(HaveLen(1))
		Expect(store.snapshot().createOrderCalls).To(BeZero())
	})

	It("merges concurrent clicks of the same session", func() {
		store.update(func(st *storeState) { st.createOrderDelay = 300 * time.Millisecond })

		const clicks = 5
		tokens := make([]any, clicks)

		var wg sync.WaitGroup
		for i := range clicks {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				resp := call(http.MethodPost, "/express/v1/create-order", "tok-sf", map[string]any{})
				Expect(resp.status).To(Equal(http.StatusOK))
				tokens[i] = resp.body["token"]
			}()
		}
		wg.Wait()

		Expect(store.snapshot().createOrderCalls).To(Equal(1))
		for _, token := range tokens {
			Expect(token).To(Equal("PAYPAL-ORDER-1"))
		}
	})

	It("keeps serving merged clicks when the first caller goes away", func() {
		store.update(func(st *storeState) { st.createOrderDelay = 300 * time.Millisecond })

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		leaderDone := make(chan error, 1)
		go func() {
			defer GinkgoRecover()

			req, err := http.NewRequestWithContext(ctx, http.MethodPost,
				apiSrv.URL+"/express/v1/create-order", bytes.NewReader([]byte(`{}`)))
			Expect(err).NotTo(HaveOccurred())
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(session.HeaderContextToken, "tok-gone")

			resp, err := apiSrv.Client().Do(req)
			if err == nil {
				resp.Body.Close()
			}
			leaderDone <- err
		}()

		time.Sleep(20 * time.Millisecond)
		resp := call(http.MethodPost, "/express/v1/create-order", "tok-gone", map[string]any{})

		Expect(resp.status).To(Equal(http.StatusOK))
		Expect(resp.body).To(HaveKeyWithValue("token", "PAYPAL-ORDER-1"))
		Expect(resp.body).NotTo(HaveKey("notifications"))
		Eventually(leaderDone).Should(Receive(HaveOccurred()))
		Expect(store.snapshot().createOrderCalls).To(Equal(1))
	})
})

var _ = Describe("POST /express/v1/approve", func() {
	It("prepares checkout, refreshes and redirects to the confirm page", func() {
		store.update(func(st *storeState) { st.rotateOnPrepareTo = "tok-rotated" })

		resp := call(http.MethodPost, "/express/v1/approve", "tok-5", map[string]any{"orderID": "X"})

		Expect(resp.status).To(Equal(http.StatusOK))
		Expect(resp.body).To(HaveKeyWithValue("redirect", "/express-checkout/confirm?paypalOrderId=X"))
		Expect(resp.header.Get(session.HeaderContextToken)).To(Equal("tok-rotated"))

		st := store.snapshot()
		Expect(st.prepared).To(Equal([]string{"X"}))
		Expect(st.refreshes).To(Equal(1))

		Expect(events.Events()).To(HaveLen(1))
		Expect(events.Events()[0].PayPalOrderID).To(Equal("X"))
	})

	It("does not navigate without an order id", func() {
		resp := call(http.MethodPost, "/express/v1/approve", "tok-6", map[string]any{"orderID": ""})

		Expect(resp.status).To(Equal(http.StatusBadRequest))
		Expect(resp.body["notifications"]).To(HaveLen(1))
		Expect(resp.body).NotTo(HaveKey("redirect"))
		Expect(store.snapshot().prepared).To(BeEmpty())
		Expect(events.Events()).To(BeEmpty())
	})

	It("rejects a malformed body", func() {
		req, err := http.NewRequest(http.MethodPost, apiSrv.URL+"/express/v1/approve", bytes.NewBufferString("{"))
		Expect(err).NotTo(HaveOccurred())

		resp, err := apiSrv.Client().Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
	})
})
