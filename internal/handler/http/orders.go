package http

import "net/http"

// createGuestOrder relays the backend's answer, status and content type
// included, whatever it is.
func (h *Handler) createGuestOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeVerbatimFailure(w, r, err, msgInternalError)
		return
	}

	resp, err := h.services.OrderService.CreateGuest(r.Context(), body)
	if err != nil {
		writeVerbatimFailure(w, r, err, msgInternalError)
		return
	}
	writeBackend(w, r, resp)
}

func (h *Handler) listAdminOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.OrderService.ListAdmin(r.Context(), orderListQuery(r.URL.Query()))
	if err != nil {
		writeListFailure(w, r, err, "Failed to fetch orders")
		return
	}
	writeBackend(w, r, resp)
}
