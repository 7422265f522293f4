package server

import (
	"errors"
	"net/http"

	"github.com/keepbook-dev/keepbook/internal/model"
	"github.com/keepbook-dev/keepbook/internal/store"
)

// Master data pages. All three kinds share the same list/create/delete
// shape; the handlers stay separate because the forms differ.

func (s *Server) handleCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.store.ListCustomers()
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, "customers.html", map[string]any{
		"Title":     "Customers",
		"Customers": customers,
		"Error":     r.URL.Query().Get("error"),
	})
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/customers", "Invalid form")
		return
	}
	c := model.Customer{
		Name:    r.PostFormValue("name"),
		Phone:   r.PostFormValue("phone"),
		Email:   r.PostFormValue("email"),
		Address: r.PostFormValue("address"),
	}
	if c.Name == "" {
		redirectError(w, r, "/customers", "Name required")
		return
	}
	if err := s.store.CreateCustomer(&c); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			redirectError(w, r, "/customers", "Name already exists")
			return
		}
		s.serverError(w, err)
		return
	}
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	s.deleteParty(w, r, s.store.DeleteCustomer, "/customers")
}

func (s *Server) handleSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := s.store.ListSuppliers()
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, "suppliers.html", map[string]any{
		"Title":     "Suppliers",
		"Suppliers": suppliers,
		"Error":     r.URL.Query().Get("error"),
	})
}

func (s *Server) handleCreateSupplier(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/suppliers", "Invalid form")
		return
	}
	sp := model.Supplier{
		Name:    r.PostFormValue("name"),
		Phone:   r.PostFormValue("phone"),
		Email:   r.PostFormValue("email"),
		Address: r.PostFormValue("address"),
	}
	if sp.Name == "" {
		redirectError(w, r, "/suppliers", "Name required")
		return
	}
	if err := s.store.CreateSupplier(&sp); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			redirectError(w, r, "/suppliers", "Name already exists")
			return
		}
		s.serverError(w, err)
		return
	}
	http.Redirect(w, r, "/suppliers", http.StatusSeeOther)
}

func (s *Server) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	s.deleteParty(w, r, s.store.DeleteSupplier, "/suppliers")
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListItems()
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, "items.html", map[string]any{
		"Title": "Items",
		"Items": items,
		"Error": r.URL.Query().Get("error"),
	})
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/items", "Invalid form")
		return
	}
	it := model.Item{
		Name: r.PostFormValue("name"),
		Unit: r.PostFormValue("unit"),
	}
	if it.Name == "" {
		redirectError(w, r, "/items", "Name required")
		return
	}
	if err := s.store.CreateItem(&it); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			redirectError(w, r, "/items", "Name already exists")
			return
		}
		s.serverError(w, err)
		return
	}
	http.Redirect(w, r, "/items", http.StatusSeeOther)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	s.deleteParty(w, r, s.store.DeleteItem, "/items")
}

func (s *Server) deleteParty(w http.ResponseWriter, r *http.Request, del func(uint) error, back string) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	switch err := del(id); {
	case err == nil:
		http.Redirect(w, r, back, http.StatusSeeOther)
	case errors.Is(err, store.ErrNotFound):
		http.NotFound(w, r)
	default:
		s.serverError(w, err)
	}
}
